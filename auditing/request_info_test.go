package auditing

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestInfoSiemData(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"

	rec := RequestInfo(req)

	assert.Equal(t, []string{"Cookie", "path", "url", "srcip"}, rec.Keys())
	assertField(t, rec, "Cookie", "")
	assertField(t, rec, "path", "/login/")
	assertField(t, rec, "url", "http://testserver/login/")
	assertField(t, rec, "srcip", "127.0.0.1")
}

func TestRequestInfoXForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "127.1.1.1")

	rec := RequestInfo(req)

	assert.Equal(t, []string{"Cookie", "X-Forwarded-For", "path", "url", "srcip"}, rec.Keys())
	assertField(t, rec, "X-Forwarded-For", "127.1.1.1")
	assertField(t, rec, "srcip", "127.1.1.1")
	assert.False(t, rec.Has("X-Real-Ip"))
}

func TestRequestInfoXRealIP(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("X-Real-Ip", "127.2.2.2")

	rec := RequestInfo(req)

	assert.Equal(t, []string{"Cookie", "X-Real-Ip", "path", "url", "srcip"}, rec.Keys())
	assertField(t, rec, "X-Real-Ip", "127.2.2.2")
	assertField(t, rec, "srcip", "127.2.2.2")
	assert.False(t, rec.Has("X-Forwarded-For"))
}

func TestRequestInfoForwardedForWinsOverRealIP(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "127.1.1.1")
	req.Header.Set("X-Real-Ip", "127.2.2.2")

	rec := RequestInfo(req)

	assertField(t, rec, "X-Forwarded-For", "127.1.1.1")
	assertField(t, rec, "srcip", "127.1.1.1")
	assert.False(t, rec.Has("X-Real-Ip"))
}

func TestRequestInfoKeepsForwardedChainUnsplit(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

	rec := RequestInfo(req)

	assertField(t, rec, "X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	assertField(t, rec, "srcip", "10.0.0.1, 10.0.0.2")
}

func TestRequestInfoCookieHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	req.Header.Set("Cookie", "sessionid=abc123")

	rec := RequestInfo(req)

	assertField(t, rec, "Cookie", "sessionid=abc123")
}

func TestDirectAddressWithoutPort(t *testing.T) {
	req := httptest.NewRequest("GET", "http://testserver/login/", nil)
	req.RemoteAddr = "192.168.1.50"

	rec := RequestInfo(req)

	assertField(t, rec, "srcip", "192.168.1.50")
}

// assertField checks that the record holds key with the expected value.
func assertField(t *testing.T, rec *Record, key, expected string) {
	t.Helper()
	value, ok := rec.Get(key)
	require.True(t, ok, "expected record to contain %q", key)
	assert.Equal(t, expected, value)
}
