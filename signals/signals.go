package signals

import "net/http"

// UsernameProvider is the single capability the audit receivers need from a
// user object: something that can name the account.
type UsernameProvider interface {
	Username() string
}

// Name adapts a bare username string to the UsernameProvider capability.
type Name string

// Username returns the wrapped name.
func (n Name) Username() string { return string(n) }

// Credential is one submitted form field. A slice of credentials keeps the
// fields in submission order, which plain url.Values loses.
type Credential struct {
	Name  string
	Value string
}

// LoginSucceeded is published after a user authenticates successfully.
type LoginSucceeded struct {
	Sender  any
	Request *http.Request
	User    UsernameProvider
}

// LoginFailed is published when a login attempt is rejected. The publisher is
// expected to obfuscate password values before publishing, but subscribers
// must still drop password fields by name.
type LoginFailed struct {
	Sender      any
	Request     *http.Request
	Credentials []Credential
}

// LoggedOut is published when a user ends their session.
type LoggedOut struct {
	Sender  any
	Request *http.Request
	User    UsernameProvider
}
