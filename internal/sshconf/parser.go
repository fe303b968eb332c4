// internal/sshconf/parser.go

package sshconf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// hostPrefix is matched literally; "host" in any other casing is treated
// as a setting keyword like everything else.
const hostPrefix = "Host "

const (
	msgInvalidLine   = "Invalid config line format"
	msgOrphanSetting = "Setting outside of Host block"
)

// ParseError locates a grammar violation in the source text. Line is
// 1-based and counts every input line, including blanks and comments.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Msg)
}

// Parse turns raw ssh client configuration text into the ordered list of
// Host blocks it declares. Order of appearance is kept and duplicate IDs
// are retained. Parsing is all or nothing: the first grammar violation
// aborts with a *ParseError and no partial result.
//
// Within a block the recognized settings are hostname, port, user,
// proxyjump, localforward and identityfile (keyword case-insensitive,
// last write wins). Any other keyword is an error. A Port value that is
// not an unsigned integer is tolerated and leaves the field absent.
func Parse(text string) ([]Host, error) {
	var hosts []Host
	var open *Host

	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, hostPrefix) {
			if open != nil {
				hosts = append(hosts, *open)
			}
			// First pattern only; extra patterns on the Host line
			// are not modelled as aliases.
			patterns := strings.Fields(line[len(hostPrefix):])
			open = &Host{ID: patterns[0]}
			continue
		}

		if open == nil {
			return nil, &ParseError{Line: n + 1, Msg: msgOrphanSetting}
		}

		key, value, ok := splitSetting(line)
		if !ok {
			return nil, &ParseError{Line: n + 1, Msg: msgInvalidLine}
		}

		switch strings.ToLower(key) {
		case "hostname":
			open.HostName = &value
		case "user":
			open.User = &value
		case "proxyjump":
			open.ProxyJump = &value
		case "localforward":
			open.LocalForward = &value
		case "identityfile":
			open.IdentityFile = &value
		case "port":
			open.Port = nil
			if p, err := strconv.ParseUint(value, 10, 32); err == nil {
				port := uint(p)
				open.Port = &port
			}
		default:
			return nil, &ParseError{Line: n + 1, Msg: msgInvalidLine}
		}
	}

	if open != nil {
		hosts = append(hosts, *open)
	}
	return hosts, nil
}

// splitSetting splits a trimmed setting line into its keyword and value on
// the first whitespace run. ok is false when the line has no whitespace at
// all, i.e. a keyword without a value.
func splitSetting(line string) (key, value string, ok bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	return line[:i], strings.TrimSpace(line[i:]), true
}
