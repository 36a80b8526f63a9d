package auditing

import (
	"net/http"
	"strings"
)

// RequestInfo collects the client and request identifying fields a SIEM
// ingest expects for an HTTP request: the raw Cookie header, the proxy
// forwarding header that identified the client (if any), the request path
// and absolute URL, and the resolved source IP.
//
// X-Forwarded-For wins over X-Real-Ip when both are present; the header
// value is kept verbatim, including any comma-separated proxy chain. With
// neither header, srcip falls back to the direct connection address.
func RequestInfo(r *http.Request) *Record {
	rec := NewRecord()
	rec.Set("Cookie", r.Header.Get("Cookie"))

	srcip := directAddress(r)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		rec.Set("X-Forwarded-For", forwarded)
		srcip = forwarded
	} else if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		rec.Set("X-Real-Ip", realIP)
		srcip = realIP
	}

	rec.Set("path", r.URL.Path)
	rec.Set("url", absoluteURL(r))
	rec.Set("srcip", srcip)

	return rec
}

// directAddress returns the connection's remote address with the port
// stripped, if one is present.
func directAddress(r *http.Request) string {
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		addr = addr[:idx]
	}
	return addr
}

// absoluteURL rebuilds the full request URL; server-side request URLs only
// carry the path and query.
func absoluteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
