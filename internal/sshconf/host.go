// internal/sshconf/host.go

package sshconf

import (
	"fmt"
	"io"
	"strings"
)

// Host is a single Host block from an OpenSSH client configuration file.
// ID is the first token after the "Host" keyword and is the only required
// field; it doubles as the argument handed to the ssh binary on connect.
// Optional directives are nil when the block never set them. A nil field
// and an empty value are different states.
type Host struct {
	ID           string
	HostName     *string
	Port         *uint
	User         *string
	ProxyJump    *string
	LocalForward *string
	IdentityFile *string

	// Expanded is interactive view state only. It never takes part in
	// identity or comparison and is not persisted anywhere.
	Expanded bool
}

// WriteDump writes the plain-text form of the host: a "host <id>" line
// followed by one indented line per directive in fixed order. Absent
// directives are printed as "none" so the dump always has the same shape.
func (h Host) WriteDump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "host %s\n", h.ID); err != nil {
		return err
	}

	var port *string
	if h.Port != nil {
		s := fmt.Sprintf("%d", *h.Port)
		port = &s
	}

	attrs := []struct {
		label string
		value *string
	}{
		{"hostname", h.HostName},
		{"port", port},
		{"user", h.User},
		{"proxyjump", h.ProxyJump},
		{"localforward", h.LocalForward},
		{"identityfile", h.IdentityFile},
	}
	for _, a := range attrs {
		value := "none"
		if a.value != nil {
			value = *a.value
		}
		if _, err := fmt.Fprintf(w, "    %s %s\n", a.label, value); err != nil {
			return err
		}
	}
	return nil
}

// Dump returns WriteDump's output as a string.
func (h Host) Dump() string {
	var b strings.Builder
	_ = h.WriteDump(&b)
	return b.String()
}
