package auditing

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/blogem/auth-audit/signals"
)

// FormFields reads a url-encoded form body and returns its fields in
// submission order. r.ParseForm collapses the body into url.Values, which is
// an unordered map, so the body is walked directly instead. Pairs with a
// malformed percent-escape are skipped, best effort.
//
// The body is consumed; callers that also need it elsewhere must capture the
// fields first.
func FormFields(r *http.Request) ([]signals.Credential, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read form body: %w", err)
	}

	var fields []signals.Credential
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}

		rawName, rawValue, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		fields = append(fields, signals.Credential{Name: name, Value: value})
	}

	return fields, nil
}
