package auditing

import (
	"strings"

	"github.com/blogem/auth-audit/signals"
)

// DefaultUsernameField names the form field that carries the login
// identifier unless a deployment overrides it (e.g. with "email").
const DefaultUsernameField = "username"

// Fields whose name starts with this literal prefix never reach a log line.
// The prefix match is deliberately broad so confirmation fields like
// password1 and password2 are caught too. It is case-sensitive and matches
// only the literal prefix; "pwd" passes through.
const redactedPrefix = "password"

// Redact filters submitted credentials for logging. Password-prefixed fields
// are dropped entirely, every other field passes through in submission
// order, and the field named by usernameField is surfaced last under the
// output key "username". An empty usernameField means DefaultUsernameField;
// if the field is absent from the input, the output has no "username" key.
func Redact(credentials []signals.Credential, usernameField string) *Record {
	if usernameField == "" {
		usernameField = DefaultUsernameField
	}

	out := NewRecord()
	var username string
	var found bool

	for _, c := range credentials {
		if strings.HasPrefix(c.Name, redactedPrefix) {
			continue
		}
		if c.Name == usernameField {
			username = c.Value
			found = true
			continue
		}
		out.Set(c.Name, c.Value)
	}

	if found {
		out.Set("username", username)
	}

	return out
}
