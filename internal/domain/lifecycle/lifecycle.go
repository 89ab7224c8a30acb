// Package lifecycle holds process-wide lifecycle settings shared by the fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as the database ping and server shutdown.
const DefaultTimeout = 30 * time.Second
