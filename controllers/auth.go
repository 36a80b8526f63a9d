package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/auth-audit/auditing"
	"github.com/blogem/auth-audit/models"
	"github.com/blogem/auth-audit/services"
	"github.com/blogem/auth-audit/signals"
)

// obfuscatedPassword replaces submitted password values in the failed-login
// event payload, matching what Django's auth framework puts in its signal.
const obfuscatedPassword = "***********"

// AuthController handles form-based login, logout and registration, and
// publishes the authentication events the audit receivers consume.
type AuthController struct {
	auth          services.AuthService
	bus           *signals.Bus
	usernameField string
}

// NewAuthController creates a new auth controller. usernameField names the
// login form field that carries the account identifier; empty means
// auditing.DefaultUsernameField.
func NewAuthController(auth services.AuthService, bus *signals.Bus, usernameField string) *AuthController {
	if usernameField == "" {
		usernameField = auditing.DefaultUsernameField
	}
	return &AuthController{
		auth:          auth,
		bus:           bus,
		usernameField: usernameField,
	}
}

// ShowLogin renders the login form
func (ac *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<h1>Login</h1>
<form method="post" action="/login">
  <label>%s <input type="text" name="%s"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit">Log in</button>
</form>
<p><a href="/register">Register</a></p>`, ac.usernameField, ac.usernameField)
}

// Login handles a submitted login form
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	fields, err := auditing.FormFields(r)
	if err != nil {
		http.Error(w, "Failed to read login form", http.StatusBadRequest)
		return
	}

	username := fieldValue(fields, ac.usernameField)
	password := fieldValue(fields, "password")

	user, err := ac.auth.Authenticate(r.Context(), username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		ac.bus.PublishLoginFailed(signals.LoginFailed{
			Sender:      ac,
			Request:     r,
			Credentials: obfuscatePasswords(fields),
		})

		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `<h1>Login failed</h1><p><a href="/login">Try again</a></p>`)
		return
	}
	if err != nil {
		http.Error(w, "Login failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sess := session.GetSession(r)
	sess.Set("user_id", strconv.Itoa(user.ID))
	sess.Set("username", user.Name)

	ac.bus.PublishLoginSucceeded(signals.LoginSucceeded{
		Sender:  ac,
		Request: r,
		User:    user,
	})

	redirect := "/"
	if target, ok := sess.Get("redirect_after_login").(string); ok && target != "" {
		redirect = target
		sess.Delete("redirect_after_login")
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout ends the session and publishes the logout event
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	name, _ := sess.Get("username").(string)

	sess.Delete("user_id")
	sess.Delete("username")

	if name != "" {
		ac.bus.PublishLoggedOut(signals.LoggedOut{
			Sender:  ac,
			Request: r,
			User:    signals.Name(name),
		})
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowRegister renders the registration form
func (ac *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<h1>Register</h1>
<form method="post" action="/register">
  <label>Username <input type="text" name="username"></label>
  <label>Password <input type="password" name="password"></label>
  <button type="submit">Create account</button>
</form>`)
}

// Register creates a new local account
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to read registration form", http.StatusBadRequest)
		return
	}

	form := models.RegisterForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if errs := form.Validate(); len(errs) > 0 {
		http.Error(w, strings.Join(errs, "; "), http.StatusBadRequest)
		return
	}

	if _, err := ac.auth.Register(r.Context(), form.Username, form.Password); err != nil {
		http.Error(w, "Failed to create account: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// fieldValue returns the first value submitted under name
func fieldValue(fields []signals.Credential, name string) string {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// obfuscatePasswords masks password-prefixed values before the failure event
// leaves the handler. The audit receivers drop these fields by name anyway;
// masking keeps the secrets out of any other subscriber too.
func obfuscatePasswords(fields []signals.Credential) []signals.Credential {
	out := make([]signals.Credential, len(fields))
	for i, f := range fields {
		if strings.HasPrefix(f.Name, "password") {
			f.Value = obfuscatedPassword
		}
		out[i] = f
	}
	return out
}
