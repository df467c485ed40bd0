package utils

import "golang.org/x/crypto/bcrypt"

// minBcryptCost is the floor for the configured hashing cost.  The expense
// of verification is the brute-force deterrent, so a misconfigured low cost
// is silently raised rather than honored.
const minBcryptCost = 10

// HashPassword returns a bcrypt hash of plain using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < minBcryptCost {
		cost = minBcryptCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash against a plaintext candidate.
// bcrypt's comparison is constant time with respect to the hash.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
