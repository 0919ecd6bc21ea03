package testutil

import (
	"os"
	"strconv"
	"time"

	"github.com/elves/keyhandler/pkg/env"
)

// Scaled returns d scaled by $KEYHANDLER_TEST_TIME_SCALE. If the environment
// variable does not exist or contains an invalid value, the scale defaults to
// 1.
func Scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * getTestTimeScale())
}

func getTestTimeScale() float64 {
	s := os.Getenv(env.KEYHANDLER_TEST_TIME_SCALE)
	if s == "" {
		return 1
	}
	scale, err := strconv.ParseFloat(s, 64)
	if err != nil || scale <= 0 {
		return 1
	}
	return scale
}
