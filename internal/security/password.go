package security

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is a one-way salted hash with constant-time verification.
// The domain never sees the algorithm, only the contract.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, encoded string) bool
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(raw string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}
