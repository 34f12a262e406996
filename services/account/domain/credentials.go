package domain

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Principal is an identity accepted by a CredentialVerifier.
type Principal struct {
	Name  string
	Roles []string
}

// CredentialVerifier checks a username/password pair. Implementations return
// ErrInvalidCredentials on mismatch and other errors only for faults.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (Principal, error)
}

// StaticVerifier accepts a single configured credential pair. It is a
// placeholder identity provider; swap it for a real user store behind the
// CredentialVerifier interface.
type StaticVerifier struct {
	username string
	hash     []byte
	roles    []string
}

// NewStaticVerifier hashes password once so Verify never compares plaintext.
func NewStaticVerifier(username, password string, roles []string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}
	return &StaticVerifier{username: username, hash: hash, roles: roles}, nil
}

// Verify runs the bcrypt comparison even on a username mismatch so both
// failures take similar time.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) (Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if !userOK || passErr != nil {
		return Principal{}, ErrInvalidCredentials
	}
	roles := make([]string, len(v.roles))
	copy(roles, v.roles)
	return Principal{Name: v.username, Roles: roles}, nil
}
