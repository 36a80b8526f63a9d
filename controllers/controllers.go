package controllers

import (
	"github.com/blogem/auth-audit/authenticator"
	"github.com/blogem/auth-audit/services"
	"github.com/blogem/auth-audit/signals"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth *AuthController
	OIDC *OIDCController
	Home *HomeController
}

// NewControllers creates and initializes all controller instances. provider
// may be nil when no OIDC identity provider is configured; the OIDC
// controller is then nil as well and its routes should not be registered.
func NewControllers(services *services.Services, bus *signals.Bus, provider authenticator.Provider, usernameField string) *Controllers {
	ctrl := &Controllers{
		Auth: NewAuthController(services.Auth, bus, usernameField),
		Home: NewHomeController(),
	}

	if provider != nil {
		ctrl.OIDC = NewOIDCController(provider, bus)
	}

	return ctrl
}
