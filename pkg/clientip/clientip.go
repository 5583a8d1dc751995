package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// FromRequest returns the normalized address of the client that sent r.
//
// With trustProxy set, the first valid address of X-Forwarded-For wins,
// then X-Real-IP. Only enable it behind a proxy that overwrites those
// headers; otherwise clients can pick their own address. The peer address
// of the connection is the fallback. An empty string means no valid address
// was found.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			for candidate := range strings.SplitSeq(forwarded, ",") {
				if ip := normalize(candidate); ip != "" {
					return ip
				}
			}
		}
		if ip := normalize(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize unmaps IPv4-in-IPv6 addresses and drops zones, so one client
// always yields the same key.
func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
