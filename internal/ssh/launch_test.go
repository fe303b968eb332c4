// internal/ssh/launch_test.go

package ssh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgv(t *testing.T) {
	assert.Equal(t, []string{"ssh", "-t", "web-1"}, Argv("web-1"))
}

func TestLookPathUnknownBinaryFallsBack(t *testing.T) {
	assert.Equal(t, "definitely-not-a-binary", lookPath("definitely-not-a-binary"))
}
