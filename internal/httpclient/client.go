// Package httpclient holds the shared timeout policy for remote calls. The
// genai library manages its own transport (option.WithHTTPClient would break
// its API key header injection), so the deadline is applied via context by
// callers instead of a tuned http.Client.
package httpclient

import "time"

// DefaultTimeout bounds a single translation request end to end.
const DefaultTimeout = 2 * time.Minute
