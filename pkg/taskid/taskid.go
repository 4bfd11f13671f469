package taskid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// New returns an opaque task identifier. Identifiers are generated
// application-side because a task's identity must be known before the task
// record and its parent analysis record are written in separate operations.
// Format: unix milliseconds + "-" + 6 random bytes, hex encoded.
func New() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// nanosecond suffix rather than returning an error nobody can act on.
		return fmt.Sprintf("task-%d-%d", time.Now().UnixMilli(), time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("task-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
