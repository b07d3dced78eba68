package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Credential errors
	ErrNotAuthenticated     = fmt.Errorf("no stored credentials")
	ErrMalformedCredentials = fmt.Errorf("stored credentials are malformed")
	ErrStoreUnavailable     = fmt.Errorf("credential store unavailable")

	// Dispatch errors
	ErrUnsupportedAction = fmt.Errorf("unsupported action")

	// Upstream errors
	ErrUpstream = fmt.Errorf("upstream request failed")
	ErrTimeout  = fmt.Errorf("operation timed out")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
