package security

import (
	"strings"
	"testing"

	"github.com/carriedev/hazellab-backend/pkg/config"
)

// test params keep argon cheap
var testCfg = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     8,
	ArgonKeyLen:      16,
}

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("admin123", testCfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "admin123" || !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash should be an encoded argon2id string, got %q", hash)
	}

	ok, err := VerifyPassword("admin123", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify against its own hash")
	}

	ok, err = VerifyPassword("otra-clave", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("admin123", testCfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("admin123", testCfg)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", testCfg); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("pw", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
	if _, err := VerifyPassword("pw", "$argon2id$v=19$m=8,t=1,p=1$!!$!!"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash for bad base64, got %v", err)
	}
}

func TestGenerateTempPassword(t *testing.T) {
	pw, err := GenerateTempPassword(12)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(pw) != 12 {
		t.Fatalf("expected 12 characters, got %d", len(pw))
	}
	if _, err := GenerateTempPassword(0); err == nil {
		t.Fatalf("expected error for non-positive length")
	}
}
