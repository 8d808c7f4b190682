// Package lifecycle holds process-wide lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as server shutdown and database pings.
const DefaultTimeout = 10 * time.Second
