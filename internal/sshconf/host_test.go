// internal/sshconf/host_test.go

package sshconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpAllFieldsPresent(t *testing.T) {
	h := Host{
		ID:           "alpha",
		HostName:     strPtr("10.0.0.1"),
		Port:         uintPtr(2222),
		User:         strPtr("deploy"),
		ProxyJump:    strPtr("bastion"),
		LocalForward: strPtr("8080 localhost:80"),
		IdentityFile: strPtr("~/.ssh/id_ed25519"),
	}

	want := "host alpha\n" +
		"    hostname 10.0.0.1\n" +
		"    port 2222\n" +
		"    user deploy\n" +
		"    proxyjump bastion\n" +
		"    localforward 8080 localhost:80\n" +
		"    identityfile ~/.ssh/id_ed25519\n"
	assert.Equal(t, want, h.Dump())
}

// The dump prints "none" for absent fields so every host has the same
// shape; the interactive view omits them instead.
func TestDumpAbsentFieldsShowNone(t *testing.T) {
	h := Host{ID: "bare"}

	want := "host bare\n" +
		"    hostname none\n" +
		"    port none\n" +
		"    user none\n" +
		"    proxyjump none\n" +
		"    localforward none\n" +
		"    identityfile none\n"
	assert.Equal(t, want, h.Dump())
}

func TestDumpIgnoresExpandedState(t *testing.T) {
	plain := Host{ID: "web", User: strPtr("root")}
	expanded := plain
	expanded.Expanded = true
	require.Equal(t, plain.Dump(), expanded.Dump())
}
