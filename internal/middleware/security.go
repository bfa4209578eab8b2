package middleware

import "github.com/gin-gonic/gin"

// apiHeaders are set on every response. The API only ever returns JSON, so
// nothing it serves may be framed, sniffed, or run as a document.
var apiHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	// Wiki link graphs change; stale search results should not be served from caches.
	{"Cache-Control", "no-store"},
}

// SecurityHeaders returns Gin middleware that sets the response headers for a JSON-only API.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range apiHeaders {
			c.Header(h[0], h[1])
		}

		c.Next()
	}
}
