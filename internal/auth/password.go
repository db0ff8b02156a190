package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt digest of plain. Cost is adaptive via
// bcrypt.DefaultCost; raising it later only affects new hashes.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plain matches digest. A malformed digest is
// treated as a mismatch, never an error.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
