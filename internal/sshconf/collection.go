// internal/sshconf/collection.go

package sshconf

import "errors"

// ErrNoSelection is reported when the session is confirmed while no host
// is highlighted.
var ErrNoSelection = errors.New("no ssh config selected")

const noCursor = -1

// Collection wraps the parsed host list with the interactive cursor.
// Navigation operates over a view, a subsequence of the hosts installed
// by SetView (the identity sequence unless a filter is active). The
// cursor either indexes a valid view position or is unset.
type Collection struct {
	hosts  []Host
	view   []int
	cursor int
}

// NewCollection builds a collection over hosts in their source order with
// no selection.
func NewCollection(hosts []Host) *Collection {
	c := &Collection{hosts: hosts, cursor: noCursor}
	c.ResetView()
	return c
}

// Len is the number of visible hosts.
func (c *Collection) Len() int { return len(c.view) }

// Total is the number of parsed hosts, ignoring any filter.
func (c *Collection) Total() int { return len(c.hosts) }

// Hosts returns the full underlying host list in source order.
func (c *Collection) Hosts() []Host { return c.hosts }

// At returns the host at visible position i.
func (c *Collection) At(i int) *Host { return &c.hosts[c.view[i]] }

// Selected reports the cursor position within the visible sequence.
func (c *Collection) Selected() (int, bool) {
	if c.cursor == noCursor {
		return 0, false
	}
	return c.cursor, true
}

// SelectNext moves the cursor one row down without wrapping. With no
// selection it selects the first visible host.
func (c *Collection) SelectNext() {
	if c.Len() == 0 {
		return
	}
	if c.cursor == noCursor {
		c.cursor = 0
		return
	}
	if c.cursor < c.Len()-1 {
		c.cursor++
	}
}

// SelectPrevious moves the cursor one row up without wrapping. With no
// selection it selects the last visible host.
func (c *Collection) SelectPrevious() {
	if c.Len() == 0 {
		return
	}
	if c.cursor == noCursor {
		c.cursor = c.Len() - 1
		return
	}
	if c.cursor > 0 {
		c.cursor--
	}
}

// SelectFirst jumps to the first visible host. No-op on an empty view.
func (c *Collection) SelectFirst() {
	if c.Len() > 0 {
		c.cursor = 0
	}
}

// SelectLast jumps to the last visible host. No-op on an empty view.
func (c *Collection) SelectLast() {
	if c.Len() > 0 {
		c.cursor = c.Len() - 1
	}
}

// ClearSelection unsets the cursor unconditionally.
func (c *Collection) ClearSelection() {
	c.cursor = noCursor
}

// ToggleExpand flips the expanded flag of the highlighted host. No-op
// with no selection.
func (c *Collection) ToggleExpand() {
	if c.cursor == noCursor {
		return
	}
	h := c.At(c.cursor)
	h.Expanded = !h.Expanded
}

// SetView installs a new visible subsequence, given as indices into the
// full host list. The selection survives when the highlighted host is
// still visible, otherwise it is cleared.
func (c *Collection) SetView(indices []int) {
	keep := noCursor
	if c.cursor != noCursor {
		sel := c.view[c.cursor]
		for vi, hi := range indices {
			if hi == sel {
				keep = vi
				break
			}
		}
	}
	c.view = indices
	c.cursor = keep
}

// ResetView makes every host visible again in source order.
func (c *Collection) ResetView() {
	indices := make([]int, len(c.hosts))
	for i := range c.hosts {
		indices[i] = i
	}
	c.SetView(indices)
}
