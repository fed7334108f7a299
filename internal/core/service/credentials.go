package service

import "golang.org/x/crypto/bcrypt"

// CredentialScheme controls how passwords are stored and checked.
//
// The historical document format keeps passwords in cleartext, and existing
// persisted data (including the seed users) only works with exact-match
// comparison, so PlainScheme is the default. BcryptScheme is the hardened
// variant for deployments that accept breaking compatibility with documents
// written under the plain scheme.
type CredentialScheme interface {
	// Store converts a plaintext password into its persisted form.
	Store(plain string) (string, error)
	// Verify reports whether plain matches the persisted credential.
	Verify(stored, plain string) bool
}

// PlainScheme persists passwords verbatim and compares them exactly.
type PlainScheme struct{}

func (PlainScheme) Store(plain string) (string, error) { return plain, nil }

func (PlainScheme) Verify(stored, plain string) bool { return stored == plain }

// BcryptScheme persists bcrypt hashes.
type BcryptScheme struct{}

func (BcryptScheme) Store(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// SchemeFromName maps a configuration value to a scheme, defaulting to plain.
func SchemeFromName(name string) CredentialScheme {
	if name == "bcrypt" {
		return BcryptScheme{}
	}
	return PlainScheme{}
}
