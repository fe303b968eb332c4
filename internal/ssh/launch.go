// internal/ssh/launch.go

package ssh

import "os/exec"

// Argv returns the interactive ssh invocation for a host alias. The alias
// goes straight through; the ssh binary resolves everything else from its
// own configuration, so the picker never has to understand SSH semantics.
func Argv(hostID string) []string {
	return []string{"ssh", "-t", hostID}
}

// lookPath resolves the binary on PATH, falling back to the bare name and
// letting the exec call report the real error.
func lookPath(binary string) string {
	if p, err := exec.LookPath(binary); err == nil {
		return p
	}
	return binary
}
