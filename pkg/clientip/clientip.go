package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders lists the proxy headers consulted by GetIP, highest priority first.
// X-Forwarded-For is handled separately because it may hold a list.
var DefaultHeaders = []string{
	"CF-Connecting-IP", // Cloudflare
	"DO-Connecting-IP", // DigitalOcean App Platform
	"Fly-Client-IP",    // Fly.io
}

// GetIP returns the client's IP address from HTTP request.
// Priority order:
//  1. DefaultHeaders in order
//  2. X-Forwarded-For (first valid entry)
//  3. X-Real-IP
//  4. RemoteAddr
//
// Returns an empty string when no valid address is found.
func GetIP(r *http.Request) string {
	for _, h := range DefaultHeaders {
		if parsed := parseIP(r.Header.Get(h)); parsed != "" {
			return parsed
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if parsed := parseIP(r.Header.Get("X-Real-IP")); parsed != "" {
		return parsed
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
