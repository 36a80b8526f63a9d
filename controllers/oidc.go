package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/auth-audit/authenticator"
	"github.com/blogem/auth-audit/signals"
)

// OIDCController handles login through an external OpenID Connect identity
// provider. A completed callback publishes the same login-success event a
// form login does.
type OIDCController struct {
	provider authenticator.Provider
	bus      *signals.Bus
}

// NewOIDCController creates a new OIDC controller
func NewOIDCController(provider authenticator.Provider, bus *signals.Bus) *OIDCController {
	return &OIDCController{
		provider: provider,
		bus:      bus,
	}
}

// Login initiates the authentication process
func (oc *OIDCController) Login(w http.ResponseWriter, r *http.Request) {
	// Generate random state
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set("state", state)

	http.Redirect(w, r, oc.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the callback from the identity provider
func (oc *OIDCController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	// Verify state
	storedState, ok := sess.Get("state").(string)
	if !ok {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	// Exchange the code for a token
	token, err := oc.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	// Extract profile information
	claims, err := oc.provider.GetClaims(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
		return
	}

	displayName := claims.DisplayName()

	if sub, ok := claims["sub"].(string); ok {
		sess.Set("user_id", sub)
	}
	sess.Set("username", displayName)

	// Clear the state from session
	sess.Delete("state")

	oc.bus.PublishLoginSucceeded(signals.LoginSucceeded{
		Sender:  oc,
		Request: r,
		User:    signals.Name(displayName),
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
