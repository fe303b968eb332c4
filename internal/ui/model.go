// internal/ui/model.go

package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"sshpick/internal/sshconf"
)

// mode separates browsing the list from typing a filter query.
type mode int

const (
	modeBrowsing mode = iota
	modeFiltering
)

const (
	headerHeight = 2 // title + blank line
	footerHeight = 2 // border + hints
)

// Model drives the interactive picker over a single host collection. The
// session is strictly synchronous: one key event is applied at a time and
// the only ways out are a confirmed host or an abort. Bubble Tea scopes
// the raw-mode/alt-screen terminal state around Run, so every exit path
// restores the terminal before the launcher or an error report runs.
type Model struct {
	conf   *sshconf.Collection
	keys   KeyMap
	filter textinput.Model
	mode   mode
	log    *zap.Logger

	width  int
	height int

	confirmed bool
	chosenID  string
	quitting  bool
}

// NewModel builds the picker model. Pass zap.NewNop() when debug logging
// is off.
func NewModel(conf *sshconf.Collection, log *zap.Logger) *Model {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter hosts"
	filter.CharLimit = 64

	return &Model{
		conf:   conf,
		keys:   DefaultKeyMap(),
		filter: filter,
		log:    log,
	}
}

// SetSize seeds the terminal dimensions before the first WindowSizeMsg
// arrives.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Outcome reports how the session ended. confirmed with an empty hostID
// means enter was pressed while nothing was selected.
func (m *Model) Outcome() (hostID string, confirmed bool) {
	return m.chosenID, m.confirmed
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeFiltering {
			return m.updateFiltering(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateBrowsing applies exactly one navigation operation per key event.
// Keys outside the table fall through without side effects.
func (m *Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Debug("session aborted")
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		if i, ok := m.conf.Selected(); ok {
			m.chosenID = m.conf.At(i).ID
		}
		m.confirmed = true
		m.quitting = true
		m.log.Debug("session confirmed", zap.String("host", m.chosenID))
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.conf.SelectNext()
	case key.Matches(msg, m.keys.Previous):
		m.conf.SelectPrevious()
	case key.Matches(msg, m.keys.First):
		m.conf.SelectFirst()
	case key.Matches(msg, m.keys.Last):
		m.conf.SelectLast()
	case key.Matches(msg, m.keys.ClearSelection):
		m.conf.ClearSelection()
	case key.Matches(msg, m.keys.ToggleExpand):
		m.conf.ToggleExpand()

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFiltering
		return m, m.filter.Focus()
	}
	return m, nil
}

// updateFiltering routes keys into the filter input. Esc drops the filter
// and shows the full list again; enter keeps the current match set and
// returns to browsing.
func (m *Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.CancelFilter):
		m.mode = modeBrowsing
		m.filter.Reset()
		m.filter.Blur()
		m.conf.ResetView()
		return m, nil

	case key.Matches(msg, m.keys.AcceptFilter):
		m.mode = modeBrowsing
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter narrows the visible hosts to the fuzzy matches of the query
// against the host IDs. Matches stay in source order; an empty query
// restores the full list.
func (m *Model) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.conf.ResetView()
		return
	}

	ids := make([]string, 0, m.conf.Total())
	for _, h := range m.conf.Hosts() {
		ids = append(ids, h.ID)
	}

	matches := fuzzy.Find(query, ids)
	view := make([]int, 0, len(matches))
	for _, match := range matches {
		view = append(view, match.Index)
	}
	sort.Ints(view)

	m.conf.SetView(view)
	m.log.Debug("filter applied", zap.String("query", query), zap.Int("matches", len(view)))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Your ssh configs"))
	b.WriteString("\n\n")

	lines, cursorLine := m.contentLines()
	for _, line := range window(lines, cursorLine, m.contentHeight()) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) contentHeight() int {
	if m.height <= 0 {
		return 0 // size unknown: show everything
	}
	return m.height - headerHeight - footerHeight
}

// contentLines renders every visible host into terminal lines and reports
// which line carries the cursor, for scrolling.
func (m *Model) contentLines() ([]string, int) {
	if m.conf.Len() == 0 {
		if m.filter.Value() != "" {
			return []string{DetailStyle.Render("  No hosts match the filter.")}, 0
		}
		return []string{DetailStyle.Render("  No hosts found in the ssh config.")}, 0
	}

	cursor, hasCursor := m.conf.Selected()
	cursorLine := 0
	var lines []string
	for i := 0; i < m.conf.Len(); i++ {
		selected := hasCursor && i == cursor
		if selected {
			cursorLine = len(lines)
		}
		lines = append(lines, m.hostLines(m.conf.At(i), i, selected)...)
	}
	return lines, cursorLine
}

// hostLines renders one host. Collapsed hosts take a single line with a
// short summary of the present fields; expanded hosts list every present
// field on its own line. Absent fields are omitted here, unlike the
// plain-text dump which prints "none" for them. Rows alternate their
// background by visible index, as in the original list; a selected row
// gets its own background instead. Every segment of a row carries the
// same background so the stripe is unbroken.
func (m *Model) hostLines(h *sshconf.Host, index int, selected bool) []string {
	bg := rowBackground(index)
	base := lipgloss.NewStyle().Background(bg)
	id := HostIDStyle.Background(bg)
	detail := DetailStyle.Background(bg)

	marker := "  "
	if selected {
		marker = "> "
		base = SelectedItemStyle
		id = SelectedItemStyle
		detail = SelectedItemStyle
	}

	if !h.Expanded {
		line := base.Render(marker) + id.Render(h.ID)
		if s := summary(h); s != "" {
			line += base.Render("  ") + detail.Render(s)
		}
		return []string{line}
	}

	lines := []string{base.Render(marker) + id.Underline(true).Render(h.ID)}

	attr := func(label string, value *string) {
		if value != nil {
			lines = append(lines, detail.Render(fmt.Sprintf("      %s %s", label, *value)))
		}
	}
	attr("HostName", h.HostName)
	if h.Port != nil {
		port := fmt.Sprintf("%d", *h.Port)
		attr("Port", &port)
	}
	attr("ProxyJump", h.ProxyJump)
	attr("User", h.User)
	attr("LocalForward", h.LocalForward)
	attr("IdentityFile", h.IdentityFile)
	return lines
}

// summary is the collapsed one-liner: hostname, user, port and proxy jump,
// each skipped individually when absent.
func summary(h *sshconf.Host) string {
	var parts []string
	if h.HostName != nil {
		parts = append(parts, *h.HostName)
	}
	if h.User != nil {
		parts = append(parts, *h.User)
	}
	if h.Port != nil {
		parts = append(parts, fmt.Sprintf(":%d", *h.Port))
	}
	if h.ProxyJump != nil {
		parts = append(parts, "via "+*h.ProxyJump)
	}
	return strings.Join(parts, "  ")
}

func (m *Model) footer() string {
	if m.mode == modeFiltering {
		return FooterStyle.Width(m.footerWidth()).Render(m.filter.View())
	}
	hints := "↓/↑ move · ← unselect · → expand · g/G top/bottom · / filter · enter connect · q quit"
	return FooterStyle.Width(m.footerWidth()).Render(hints)
}

func (m *Model) footerWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

// window slices lines so the cursor line stays on screen. With an unknown
// or sufficient height everything is shown.
func window(lines []string, cursorLine, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := cursorLine - height/2
	if start < 0 {
		start = 0
	}
	if start > len(lines)-height {
		start = len(lines) - height
	}
	return lines[start : start+height]
}
