package service

// PasswordService derives and verifies salted password hashes.
type PasswordService interface {
	// Hash derives a stored form ("derivedKeyHex.saltHex") from the
	// plaintext with a fresh random salt. CPU/memory-bound; treat as a
	// blocking call.
	Hash(password string) (string, error)

	// Verify re-derives the key from the stored salt and compares in
	// constant time. Malformed stored forms fail closed (false), never
	// panic.
	Verify(storedForm, password string) bool
}
