package security

import "github.com/carriedev/hazellab-backend/pkg/config"

// Hasher binds the argon2id helpers to a fixed parameter set so services can
// depend on a single hashing implementation.
type Hasher struct {
	cfg config.PasswordConfig
}

// NewHasher constructs a Hasher with the provided parameters.
func NewHasher(cfg config.PasswordConfig) *Hasher {
	return &Hasher{cfg: cfg}
}

// Hash encodes the password with the configured argon2id parameters.
func (h *Hasher) Hash(password string) (string, error) {
	return HashPassword(password, h.cfg)
}

// Verify checks the password against a stored encoded hash.
func (h *Hasher) Verify(password, encodedHash string) (bool, error) {
	return VerifyPassword(password, encodedHash)
}
