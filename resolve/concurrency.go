package resolve

import (
	"os"
	"runtime"
	"strconv"
)

const concurrencyEnvVar = "RESOLVE_MAX_CONCURRENCY"

// oracleConcurrency returns the number of outstanding Oracle.Latest calls
// the discoverer is allowed to issue at once for a single frontier batch.
// It honors RESOLVE_MAX_CONCURRENCY if set, otherwise defaults to
// GOMAXPROCS*8, clamped to [4, 1024].
func oracleConcurrency() int {
	if v := os.Getenv(concurrencyEnvVar); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 1024 {
				return 1024
			}

			return n
		}
	}

	c := runtime.GOMAXPROCS(0) * 8
	if c < 4 {
		c = 4
	}

	if c > 1024 {
		c = 1024
	}

	return c
}
