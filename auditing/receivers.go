package auditing

import (
	"github.com/blogem/auth-audit/logging"
	"github.com/blogem/auth-audit/signals"
)

// Channel is the logical logging destination all auth audit lines share.
const Channel = "auditing"

// Event labels are kept byte-for-byte compatible with the Django auditing
// app this replaces, so existing SIEM correlation rules keep matching.
const (
	labelLoginSucceeded = "Django Login successful"
	labelLoginFailed    = "Django Login failed"
	labelLoggedOut      = "Django Logout successful"
)

// Receivers assembles and emits one SIEM audit line per authentication
// event. Receivers are stateless; each call works only on its own event.
type Receivers struct {
	emitter       logging.Emitter
	usernameField string
}

// NewReceivers creates the audit receivers. usernameField selects which
// submitted form field holds the login identifier; empty means
// DefaultUsernameField.
func NewReceivers(emitter logging.Emitter, usernameField string) *Receivers {
	if usernameField == "" {
		usernameField = DefaultUsernameField
	}
	return &Receivers{
		emitter:       emitter,
		usernameField: usernameField,
	}
}

// Register subscribes the receivers to all three authentication events.
func (rc *Receivers) Register(bus *signals.Bus) {
	bus.OnLoginSucceeded(rc.LoginSucceeded)
	bus.OnLoginFailed(rc.LoginFailed)
	bus.OnLoggedOut(rc.LoggedOut)
}

// LoginSucceeded emits an INFO line for a completed login.
func (rc *Receivers) LoginSucceeded(e signals.LoginSucceeded) {
	rec := RequestInfo(e.Request)
	rec.Set("username", e.User.Username())

	rc.emitter.Emit(Channel, logging.SeverityInfo, message(labelLoginSucceeded, rec))
}

// LoginFailed emits a WARNING line for a rejected login attempt, with the
// submitted credentials redacted.
func (rc *Receivers) LoginFailed(e signals.LoginFailed) {
	rec := RequestInfo(e.Request)
	rec.Merge(Redact(e.Credentials, rc.usernameField))

	rc.emitter.Emit(Channel, logging.SeverityWarning, message(labelLoginFailed, rec))
}

// LoggedOut emits an INFO line for an ended session.
func (rc *Receivers) LoggedOut(e signals.LoggedOut) {
	rec := RequestInfo(e.Request)
	rec.Set("username", e.User.Username())

	rc.emitter.Emit(Channel, logging.SeverityInfo, message(labelLoggedOut, rec))
}

// message joins the quoted event label and the formatted record.
func message(label string, rec *Record) string {
	return `"` + label + `" ` + FormatRecord(rec)
}
