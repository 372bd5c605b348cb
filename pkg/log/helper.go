package log

import (
	"fmt"
	stdlog "log"
)

// MustInit initializes the SQLite-backed logger for the named app,
// aborting on failure.
func MustInit(app string) {
	if err := Init(fmt.Sprintf("%s.db", app)); err != nil {
		stdlog.Fatalf("FATAL: Failed to initialize logger: %v\n", err)
	}
}
