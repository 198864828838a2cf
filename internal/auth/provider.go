// Package auth resolves bearer tokens to user identities through an
// external userinfo endpoint. The server itself issues no tokens;
// identity lives with the parent platform.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pathforward/doorhub/internal/utils"
)

// ErrUnauthenticated is returned when a token is missing, expired
// or rejected by the identity provider.
var ErrUnauthenticated = errors.New("auth: unauthenticated")

// User is the identity attached to an authenticated request.
type User struct {
	ID    string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider turns a bearer token into a user identity.
type Provider interface {
	UserFromToken(ctx context.Context, token string) (User, error)
}

// HTTPProvider validates tokens against an OIDC-style userinfo
// endpoint.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates a provider for the given userinfo URL.
func NewHTTPProvider(userinfoURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:    userinfoURL,
		client: &http.Client{Timeout: timeout},
	}
}

// UserFromToken asks the userinfo endpoint who the token belongs to.
func (p *HTTPProvider) UserFromToken(ctx context.Context, token string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return User{}, fmt.Errorf("auth: build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := p.client.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("auth: userinfo request: %w", err)
	}
	defer utils.Close(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return User{}, ErrUnauthenticated
	case resp.StatusCode != http.StatusOK:
		return User{}, fmt.Errorf("auth: userinfo returned %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("auth: decode userinfo: %w", err)
	}
	if user.ID == "" {
		return User{}, ErrUnauthenticated
	}
	return user, nil
}
