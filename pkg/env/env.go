// Package env keeps names of environment variables with special significance to
// keyhandler.
package env

// Environment variables with special significance to keyhandler.
//
// Note that some of these env vars may be significant only in special
// circumstances, such as when running unit tests.
const (
	// Default for the -bindings flag.
	KEYHANDLER_BINDINGS = "KEYHANDLER_BINDINGS"
	// Default for the -db flag.
	KEYHANDLER_DB              = "KEYHANDLER_DB"
	KEYHANDLER_TEST_TIME_SCALE = "KEYHANDLER_TEST_TIME_SCALE"
)
