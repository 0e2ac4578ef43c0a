// Package timeouts defines shared timeout constants used by the commands.
package timeouts

import "time"

// TelemetryShutdown caps how long a command waits for pending spans to
// flush on exit.
const TelemetryShutdown = 5 * time.Second

// StoreBusy is how long SQLite waits on a locked report database before
// failing a statement.
const StoreBusy = 5 * time.Second
