package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "secret123" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !CheckPassword("secret123", digest) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", digest) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ (salt)")
	}
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	// A digest that is not bcrypt output must read as mismatch, not panic.
	if CheckPassword("secret123", "not-a-bcrypt-digest") {
		t.Fatal("malformed digest accepted")
	}
	if CheckPassword("secret123", "") {
		t.Fatal("empty digest accepted")
	}
}
