package impl

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params are the KDF cost parameters. Fixed at build time; tuned to
// resist offline brute force while keeping hashing tens of milliseconds.
type Argon2Params struct {
	Time    uint32 // iterations
	Memory  uint32 // KiB
	Threads uint8  // parallelism
	KeyLen  uint32 // derived key bytes
	SaltLen uint32 // salt bytes
}

type PasswordServiceImpl struct {
	cur Argon2Params
}

func NewPasswordServiceArgon2id() *PasswordServiceImpl {
	return &PasswordServiceImpl{
		cur: Argon2Params{
			Time:    3,
			Memory:  64 * 1024, // 64 MiB
			Threads: 1,
			KeyLen:  32,
			SaltLen: 16,
		},
	}
}

const storedFormSeparator = "."

// Hash derives a fresh key with a random salt and returns the stored form
// "derivedKeyHex.saltHex".
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	salt := make([]byte, p.cur.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, p.cur.Time, p.cur.Memory, p.cur.Threads, p.cur.KeyLen)
	return hex.EncodeToString(key) + storedFormSeparator + hex.EncodeToString(salt), nil
}

// Verify re-derives the key using the stored salt and compares in constant
// time. A malformed stored form is a non-match, never a panic.
func (p *PasswordServiceImpl) Verify(storedForm, password string) bool {
	key, salt, ok := splitStoredForm(storedForm)
	if !ok {
		return false
	}
	calculated := argon2.IDKey([]byte(password), salt, p.cur.Time, p.cur.Memory, p.cur.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(calculated, key) == 1
}

func splitStoredForm(storedForm string) (key, salt []byte, ok bool) {
	parts := strings.Split(storedForm, storedFormSeparator)
	if len(parts) != 2 {
		return nil, nil, false
	}
	key, err := hex.DecodeString(parts[0])
	if err != nil || len(key) == 0 {
		return nil, nil, false
	}
	salt, err = hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return nil, nil, false
	}
	return key, salt, true
}
