package impl

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestPasswordServiceHashVerifyRoundTrip(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	stored, err := ps.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if !ps.Verify(stored, "correct horse battery staple") {
		t.Fatalf("expected stored form to verify against the original password")
	}
	if ps.Verify(stored, "correct horse battery stapl") {
		t.Fatalf("expected near-miss password to be rejected")
	}
	if ps.Verify(stored, "") {
		t.Fatalf("expected empty password to be rejected")
	}
}

func TestPasswordServiceHashStoredFormShape(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	stored, err := ps.Hash("hunter22")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		t.Fatalf("expected two dot-separated parts, got %d in %q", len(parts), stored)
	}
	key, err := hex.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("derived key is not hex: %v", err)
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("salt is not hex: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("expected 32-byte derived key, got %d", len(key))
	}
	if len(salt) != 16 {
		t.Fatalf("expected 16-byte salt, got %d", len(salt))
	}
}

func TestPasswordServiceHashSaltsAreUnique(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	first, err := ps.Hash("hunter22")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := ps.Hash("hunter22")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password must not share a salt")
	}
	if !ps.Verify(first, "hunter22") || !ps.Verify(second, "hunter22") {
		t.Fatalf("both stored forms must verify independently")
	}
}

func TestPasswordServiceHashRejectsEmptyPassword(t *testing.T) {
	ps := NewPasswordServiceArgon2id()
	if _, err := ps.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestPasswordServiceVerifyMalformedStoredForms(t *testing.T) {
	ps := NewPasswordServiceArgon2id()

	cases := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "no separator", stored: "deadbeef"},
		{name: "too many parts", stored: "dead.beef.cafe"},
		{name: "non-hex key", stored: "zz.deadbeef"},
		{name: "non-hex salt", stored: "deadbeef.zz"},
		{name: "empty key", stored: ".deadbeef"},
		{name: "empty salt", stored: "deadbeef."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if ps.Verify(tc.stored, "whatever") {
				t.Fatalf("malformed stored form %q must not verify", tc.stored)
			}
		})
	}
}
