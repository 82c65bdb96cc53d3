package auth

import (
	"strings"
	"testing"
)

func TestLoginPasteToken(t *testing.T) {
	cred, err := LoginPasteToken("myblog", strings.NewReader("  tok-123  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred.AccessToken != "tok-123" {
		t.Errorf("token: got %q, want trimmed tok-123", cred.AccessToken)
	}
	if cred.Blog != "myblog" {
		t.Errorf("blog: got %q", cred.Blog)
	}
	if cred.AuthMethod != "token" {
		t.Errorf("auth method: got %q", cred.AuthMethod)
	}
}

func TestLoginPasteToken_Empty(t *testing.T) {
	if _, err := LoginPasteToken("myblog", strings.NewReader("   \n")); err == nil {
		t.Error("expected error for blank token")
	}
}

func TestLoginPasteToken_NoInput(t *testing.T) {
	if _, err := LoginPasteToken("myblog", strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestCredential_TokenSource(t *testing.T) {
	cred := &Credential{AccessToken: "tok"}
	tok, err := cred.TokenSource().Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "tok" {
		t.Errorf("token source: got %q", tok.AccessToken)
	}
}
