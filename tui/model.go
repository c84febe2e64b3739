package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/takaishi/minigrep/preview"
	"github.com/takaishi/minigrep/search"
)

const visibleResults = 5

// Options describe the file being browsed
type Options struct {
	File       string
	Contents   string
	Query      string
	IgnoreCase bool
}

// Model represents the application state
type Model struct {
	file  string
	lines []string

	// Search state
	query         string
	ignoreCase    bool
	contents      string
	matches       []search.Match
	selectedIndex int
	resultsOffset int // Scroll offset for results list

	// Preview state
	preview      *preview.Preview
	previewError error

	// Set when the user picks a match with enter
	chosen *search.Match

	// UI dimensions
	width  int
	height int
}

// New creates a new Model instance and runs the initial search
func New(opts Options) *Model {
	m := &Model{
		file:       opts.File,
		contents:   opts.Contents,
		lines:      search.Lines(opts.Contents),
		query:      opts.Query,
		ignoreCase: opts.IgnoreCase,
	}
	m.refresh()
	return m
}

// Chosen returns the match picked with enter, if any
func (m *Model) Chosen() (search.Match, bool) {
	if m.chosen == nil {
		return search.Match{}, false
	}
	return *m.chosen, true
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m, nil
	}
}

// View renders the UI
func (m *Model) View() string {
	return renderView(m)
}

// handleKey processes keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.ignoreCase = !m.ignoreCase
		m.refresh()
		return m, nil

	case "up", "ctrl+p":
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.adjustScroll()
			m.loadPreview()
		}
		return m, nil

	case "down", "ctrl+n":
		if m.selectedIndex < len(m.matches)-1 {
			m.selectedIndex++
			m.adjustScroll()
			m.loadPreview()
		}
		return m, nil

	case "enter":
		if m.selectedIndex >= 0 && m.selectedIndex < len(m.matches) {
			match := m.matches[m.selectedIndex]
			m.chosen = &match
			return m, tea.Quit
		}
		return m, nil

	case "backspace":
		if len(m.query) > 0 {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.refresh()
		}
		return m, nil

	default:
		switch msg.Type {
		case tea.KeySpace:
			m.query += " "
			m.refresh()
		case tea.KeyRunes:
			if !msg.Alt {
				m.query += string(msg.Runes)
				m.refresh()
			}
		}
		return m, nil
	}
}

// refresh reruns the search over the in-memory contents
func (m *Model) refresh() {
	m.selectedIndex = -1
	m.resultsOffset = 0
	m.preview = nil
	m.previewError = nil

	if m.query == "" {
		m.matches = nil
		return
	}

	m.matches = search.Find(m.query, m.contents, m.ignoreCase)
	if len(m.matches) > 0 {
		m.selectedIndex = 0
		m.loadPreview()
	}
}

// adjustScroll adjusts the scroll offset to keep selected item visible
func (m *Model) adjustScroll() {
	if len(m.matches) <= visibleResults {
		m.resultsOffset = 0
		return
	}

	// If selected item is above visible area, scroll up
	if m.selectedIndex < m.resultsOffset {
		m.resultsOffset = m.selectedIndex
	}

	// If selected item is below visible area, scroll down
	if m.selectedIndex >= m.resultsOffset+visibleResults {
		m.resultsOffset = m.selectedIndex - visibleResults + 1
	}

	m.resultsOffset = max(0, min(m.resultsOffset, len(m.matches)-visibleResults))
}

// loadPreview loads preview for the currently selected result
func (m *Model) loadPreview() {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.matches) {
		return
	}
	m.preview, m.previewError = preview.Build(m.file, m.lines, m.matches[m.selectedIndex].Line)
}
