// Package fatal holds the abort primitive used when transcoding validation
// detects malformed input.
package fatal

import "os"

// Status is the process exit status used by Terminate. 134 matches the
// conventional status of a SIGABRT death.
const Status = 134

// Terminate ends the process immediately. It never returns and, unlike a
// panic, cannot be recovered: malformed transcoding input is a logic error,
// not a condition to handle.
func Terminate() {
	os.Exit(Status)
}
