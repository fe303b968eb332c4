// internal/logging/logging_test.go

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutDebugIsSilent(t *testing.T) {
	log, err := New("", false)
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("should go nowhere")
}

func TestNewWithDebugWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sshpick.log")

	log, err := New(path, true)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
