package advisory

import "errors"

// Domain-specific errors for the advisory package. The generative path maps
// provider failures onto this taxonomy; the router decides per turn whether
// a failure surfaces to the user or triggers the deterministic fallback.
var (
	ErrNotConfigured  = errors.New("generative provider not configured")
	ErrTransport      = errors.New("generative provider unreachable")
	ErrEmptyResponse  = errors.New("generative provider returned no content")
	ErrEmptyHistoryID = errors.New("conversation id is empty")
)
