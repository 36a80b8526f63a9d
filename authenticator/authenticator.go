package authenticator

import (
	"context"
)

// Config holds OAuth provider configuration
type Config struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// DisplayName picks the best human-readable identity from the claims:
// nickname, then name, then email, then the subject.
func (c Claims) DisplayName() string {
	for _, key := range []string{"nickname", "name", "email", "sub"} {
		if value, ok := c[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
