package auditing

import "strings"

// FormatRecord renders rec as a sequence of `"key": "value"` pairs joined by
// ", ", in insertion order and without enclosing braces. The fragment is
// meant to be embedded in a wrapping structured-logging context that
// supplies its own braces.
//
// Values are written raw: "{" + FormatRecord(rec) + "}" parses as JSON only
// when no value contains a quote or control character.
func FormatRecord(rec *Record) string {
	var b strings.Builder

	for i, key := range rec.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		value, _ := rec.Get(key)
		b.WriteString(`"`)
		b.WriteString(key)
		b.WriteString(`": "`)
		b.WriteString(value)
		b.WriteString(`"`)
	}

	return b.String()
}
