package taskid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormat(t *testing.T) {
	id := New()
	assert.True(t, strings.HasPrefix(id, "task-"))
	parts := strings.Split(id, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 12) // 6 random bytes, hex encoded
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := New()
		assert.False(t, seen[id], "duplicate identifier %s", id)
		seen[id] = true
	}
}
