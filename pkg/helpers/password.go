package helpers

import "golang.org/x/crypto/bcrypt"

// MaxPasswordBytes is the longest input bcrypt reads. Longer passwords are
// cut to this many bytes before hashing and comparing.
const MaxPasswordBytes = 72

func bcryptInput(plain string) []byte {
	b := []byte(plain)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// HashPassword hashes the plain text password using bcrypt with a fresh salt
// at the given cost. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword(bcryptInput(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(plain)) == nil
}
