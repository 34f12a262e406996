package domain

import (
	"context"
	"errors"
	"testing"
)

func TestStaticVerifier(t *testing.T) {
	v, err := NewStaticVerifier("bituser", "abc456", []string{"catalog.read"})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	tests := []struct {
		name     string
		user     string
		password string
		wantErr  error
	}{
		{"match", "bituser", "abc456", nil},
		{"wrong password", "bituser", "wrong", ErrInvalidCredentials},
		{"wrong user", "someone", "abc456", ErrInvalidCredentials},
		{"case sensitive user", "BitUser", "abc456", ErrInvalidCredentials},
		{"empty", "", "", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := v.Verify(context.Background(), tt.user, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && (p.Name != "bituser" || len(p.Roles) != 1) {
				t.Fatalf("unexpected principal: %+v", p)
			}
		})
	}
}

func TestStaticVerifier_RolesAreCopied(t *testing.T) {
	v, _ := NewStaticVerifier("bituser", "abc456", []string{"catalog.read"})
	p, _ := v.Verify(context.Background(), "bituser", "abc456")
	p.Roles[0] = "admin"

	again, _ := v.Verify(context.Background(), "bituser", "abc456")
	if again.Roles[0] != "catalog.read" {
		t.Fatal("callers must not be able to mutate configured roles")
	}
}
