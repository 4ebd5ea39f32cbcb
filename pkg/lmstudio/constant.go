package lmstudio

import "time"

const (
	// DefaultBaseURL is the default LM Studio local server endpoint
	DefaultBaseURL = "http://localhost:1234/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// MaxTimeout is the hard ceiling on the per-request timeout.
	// Anything above this is a configuration error, not a clamp.
	MaxTimeout = 10 * time.Second
)

// Chat roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)
