package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures, kept distinct for logging only. Handlers must map
// all of them to the same 401 so a caller cannot tell why a token was bad.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// TokenService issues and verifies HS256-signed session tokens. There is no
// revocation: a token stays valid for its full TTL even if the account
// changes afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewTokenService returns a TokenService signing with secret. Tokens expire
// ttl after issuance.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{"HS256"})),
	}
}

// Issue mints a token whose subject is the user id.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
func (s *TokenService) Verify(token string) (int64, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject", ErrTokenMalformed)
	}
	return id, nil
}
