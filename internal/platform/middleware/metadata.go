package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"casedesk/pkg/requestcontext"
)

// ClientMetadata records the client address and device for request logs.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientIP(r.Context(), ClientIPFromRequest(r))
		ctx = requestcontext.WithDevice(ctx, DeviceFromUserAgent(r.UserAgent()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest returns the originating client address, preferring
// proxy headers over the connection address.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if r.RemoteAddr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// DeviceFromUserAgent summarises a User-Agent as "<browser> on <os>", with a
// mobile marker. Crawlers are reported as "bot".
func DeviceFromUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "unknown"
	}
	ua := useragent.New(raw)
	if ua.Bot() {
		return "bot"
	}
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "unknown"
	}
	device := browser
	if platform := ua.OS(); platform != "" {
		device += " on " + platform
	}
	if ua.Mobile() {
		device += " (mobile)"
	}
	return device
}
