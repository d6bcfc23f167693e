package config

import (
	"os"
	"time"
)

const (
	// Server addresses
	TCPHost  = "0.0.0.0"
	TCPPort  = "9998"
	HTTPAddr = "0.0.0.0:3335"

	// Redis defaults
	RedisPassword = ""
	RedisDB       = 0

	// Generation limits
	DefaultLength = 24
	MaxLength     = 1024

	// One-time share settings
	ShareTTL      = 24 * time.Hour
	ShareIDLength = 32

	// Base URL for share links
	BaseURL = "https://pw.ig.lc/"
)

// TrustProxy returns true if X-Forwarded-For and X-Real-IP headers should be trusted.
// Set TRUST_PROXY=true when running behind a reverse proxy (nginx, Cloudflare, etc.).
// Defaults to false for security — untrusted headers can be spoofed to bypass rate limiting.
func TrustProxy() bool {
	return os.Getenv("TRUST_PROXY") == "true"
}
