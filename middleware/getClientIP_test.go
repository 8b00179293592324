package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := requestContext("10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.2",
		"X-Real-IP":       "198.51.100.9",
	})

	if ip := getClientIP(c); ip != "203.0.113.7" {
		t.Fatalf("ip = %q, want first forwarded entry", ip)
	}
}

func TestGetClientIPFallsBackToRealIP(t *testing.T) {
	c := requestContext("10.0.0.1:1234", map[string]string{
		"X-Real-IP": "198.51.100.9",
	})

	if ip := getClientIP(c); ip != "198.51.100.9" {
		t.Fatalf("ip = %q, want X-Real-IP", ip)
	}
}

func TestGetClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := requestContext("192.0.2.4:56789", nil)

	if ip := getClientIP(c); ip != "192.0.2.4" {
		t.Fatalf("ip = %q, want bare host", ip)
	}
}
