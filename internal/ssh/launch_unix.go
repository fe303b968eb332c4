// internal/ssh/launch_unix.go
//go:build !windows
// +build !windows

package ssh

import (
	"fmt"
	"os"
	"syscall"
)

// Launch replaces the current process image with an interactive ssh
// session to the given host alias, inheriting the environment and the
// terminal. It only returns on failure.
func Launch(hostID string) error {
	argv := Argv(hostID)
	if err := syscall.Exec(lookPath(argv[0]), argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec ssh: %w", err)
	}
	return nil
}
