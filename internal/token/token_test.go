package token

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	svc := NewService("test-secret", 30*24*time.Hour, false)

	tok, err := svc.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	userID, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Parse() userID = %q, want %q", userID, "user-123")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour, false)
	verifier := NewService("secret-b", time.Hour, false)

	tok, err := issuer.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := verifier.Parse(tok); err != ErrInvalidToken {
		t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
	}
}

func TestParse_Expired(t *testing.T) {
	svc := NewService("test-secret", -time.Hour, false)

	tok, err := svc.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := svc.Parse(tok); err != ErrInvalidToken {
		t.Errorf("Parse() error = %v, want ErrInvalidToken", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour, false)

	testCases := []string{"", "not-a-token", "aaaa.bbbb.cccc"}
	for _, tok := range testCases {
		if _, err := svc.Parse(tok); err != ErrInvalidToken {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}
