// internal/ssh/launch_windows.go
//go:build windows
// +build windows

package ssh

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Launch starts an interactive ssh session as a child process that
// inherits the terminal. Windows has no execve, so the child's exit code
// is propagated instead.
func Launch(hostID string) error {
	argv := Argv(hostID)
	cmd := exec.Command(lookPath(argv[0]), argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run ssh: %w", err)
	}
	return nil
}
