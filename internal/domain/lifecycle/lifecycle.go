// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook may take,
// e.g. the initial database ping or the HTTP server shutdown.
const DefaultTimeout = 30 * time.Second
