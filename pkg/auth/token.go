// Package auth bootstraps Tumblweed credentials from a pasted OAuth2
// access token. Token acquisition itself happens elsewhere (the Tumblr
// OAuth consent flow); this package only collects and stores the result.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/oauth2"
)

// Credential is a stored API credential for one blog.
type Credential struct {
	Blog        string `json:"blog"`
	AccessToken string `json:"access_token"`
	AuthMethod  string `json:"auth_method"`
}

// TokenSource returns an oauth2 source yielding the stored token. No
// refresh happens; when the token expires the user pastes a new one.
func (c *Credential) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.AccessToken})
}

// LoginPasteToken prompts on stdout and reads an access token from r.
func LoginPasteToken(blog string, r io.Reader) (*Credential, error) {
	fmt.Printf("Paste the OAuth2 access token for %s (from www.tumblr.com/oauth/apps):\n", blog)
	fmt.Print("> ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading token: %w", err)
		}
		return nil, errors.New("no input received")
	}

	token := strings.TrimSpace(scanner.Text())
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	return &Credential{
		Blog:        blog,
		AccessToken: token,
		AuthMethod:  "token",
	}, nil
}
