// internal/utils/path_test.go

package utils

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandHome(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME override is not honored on windows")
	}
	t.Setenv("HOME", "/home/edvin")

	assert.Equal(t, filepath.Join("/home/edvin", ".ssh", "config"), ExpandHome("~/.ssh/config"))
	assert.Equal(t, "/home/edvin", ExpandHome("~"))
	assert.Equal(t, "/etc/ssh/ssh_config", ExpandHome("/etc/ssh/ssh_config"))
	assert.Equal(t, "~other/config", ExpandHome("~other/config"))
	assert.Equal(t, "relative/config", ExpandHome("relative/config"))
}
