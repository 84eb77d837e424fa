package netutil

import (
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP extracts the caller's IP address hint from an inbound request:
// the first X-Forwarded-For entry when present, otherwise the socket peer
// address. Returns "" when nothing parseable is available; login records
// simply omit the address in that case.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// XFF may be a list: client, proxy1, proxy2...
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if ip, ok := NormalizeIP(first); ok {
			return ip
		}
	}
	if ip, ok := NormalizeIP(r.RemoteAddr); ok {
		return ip
	}
	return ""
}

// NormalizeIP takes either a bare IP string or an address that may include
// a port (e.g. "192.0.2.4:1234" or "[2001:db8::1]:443") and returns the
// canonical IP portion without any zone identifier. The second return value
// reports whether the input parsed as an IP address.
func NormalizeIP(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if addrPort, err := netip.ParseAddrPort(raw); err == nil {
		addr := addrPort.Addr().WithZone("")
		if addr.IsValid() {
			return addr.String(), true
		}
	}
	if addr, err := netip.ParseAddr(raw); err == nil {
		addr = addr.WithZone("")
		if addr.IsValid() {
			return addr.String(), true
		}
	}
	// Bracketed IPv6 with a non-numeric port (e.g. "[::1]:port").
	if strings.HasPrefix(raw, "[") && strings.Contains(raw, "]") {
		host := raw[1:strings.LastIndex(raw, "]")]
		if addr, err := netip.ParseAddr(host); err == nil {
			addr = addr.WithZone("")
			if addr.IsValid() {
				return addr.String(), true
			}
		}
	}
	// Last resort: strip a trailing colon section and parse again.
	if idx := strings.LastIndex(raw, ":"); idx > 0 {
		if addr, err := netip.ParseAddr(raw[:idx]); err == nil {
			addr = addr.WithZone("")
			if addr.IsValid() {
				return addr.String(), true
			}
		}
	}
	return "", false
}
