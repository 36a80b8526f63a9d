package middleware

import (
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/blogem/auth-audit/auditing"
	"github.com/blogem/auth-audit/logging"
)

const requestIDHeader = "X-Request-Id"

// RequestHeadersLogger emits one line per request on the audit channel,
// rendering the request method, path, source address and headers through the
// SIEM formatter. Each request is tagged with a request id, generated unless
// the client already sent one, and echoed on the response.
//
// The Authorization and Cookie values are not repeated in the header dump;
// Cookie is already part of the request info and Authorization carries
// credentials.
func RequestHeadersLogger(emitter logging.Emitter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			rec := auditing.NewRecord()
			rec.Set("request_id", requestID)
			rec.Set("method", r.Method)
			rec.Merge(auditing.RequestInfo(r))
			mergeHeaders(rec, r.Header)

			emitter.Emit(auditing.Channel, logging.SeverityInfo,
				`"HTTP request headers" `+auditing.FormatRecord(rec))

			next.ServeHTTP(w, r)
		})
	}
}

// mergeHeaders appends the request headers onto rec in name order, since Go
// header maps have no stable iteration order.
func mergeHeaders(rec *auditing.Record, headers http.Header) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		if name == "Authorization" || name == "Cookie" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rec.Set(name, strings.Join(headers[name], ", "))
	}
}
