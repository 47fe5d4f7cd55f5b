package debug

import (
	"fmt"
	"log"
	"time"
)

// Logf prints trace output if debugging is enabled
func Logf(enabled bool, format string, args ...interface{}) {
	if enabled {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		log.Printf("[%s] %s", timestamp, message)
	}
}

// Span measures and logs execution time of a pipeline stage if debugging
// is enabled; call the returned func when the stage finishes.
func Span(enabled bool, stage string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Logf(enabled, "starting: %s", stage)

	return func() {
		Logf(enabled, "completed: %s (took %v)", stage, time.Since(start))
	}
}
