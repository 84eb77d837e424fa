package netutil

import (
	"net/http/httptest"
	"testing"
)

func TestNormalizeIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "ipv4 with port", input: "192.0.2.4:8080", expected: "192.0.2.4", ok: true},
		{name: "ipv6 with port", input: "[2001:db8::1]:443", expected: "2001:db8::1", ok: true},
		{name: "ipv6 textual port", input: "[::1]:port", expected: "::1", ok: true},
		{name: "plain ipv4", input: "203.0.113.9", expected: "203.0.113.9", ok: true},
		{name: "plain ipv6", input: "2001:db8::5", expected: "2001:db8::5", ok: true},
		{name: "garbage", input: "not-an-ip", expected: "", ok: false},
		{name: "empty", input: "", expected: "", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeIP(tc.input)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "203.0.113.9:4444"
	r.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	if got := ClientIP(r); got != "198.51.100.7" {
		t.Fatalf("expected forwarded address, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "203.0.113.9:4444"
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("expected peer address, got %q", got)
	}
}

func TestClientIPIgnoresUnparseableForwardedFor(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "203.0.113.9:4444"
	r.Header.Set("X-Forwarded-For", "unknown")
	if got := ClientIP(r); got != "203.0.113.9" {
		t.Fatalf("expected peer address, got %q", got)
	}
}
