package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/takaishi/minigrep/search"
)

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	searchIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	queryInputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("236"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	caseActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1)

	caseInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	// Result styles
	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedResultStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("236")).
			Bold(true)

	lineInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Align(lipgloss.Right).
			PaddingLeft(1)

	// Preview styles
	previewHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Bold(true)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(6).
			Align(lipgloss.Right)

	hitLineNumberStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("25")).
				Width(6).
				Align(lipgloss.Right)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// renderView renders the entire UI
func renderView(m *Model) string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// header (3 + border), results, preview border
	previewHeight := max(m.height-4-visibleResults-2, 5)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m),
		renderResults(m),
		renderPreview(m, previewHeight),
	)
}

// renderHeader renders the query line and the status line
func renderHeader(m *Model) string {
	icon := searchIconStyle.Render(">")
	queryDisplay := queryInputStyle.Render(m.query + "█")

	caseTab := caseInactiveStyle.Render("Match Case")
	if !m.ignoreCase {
		caseTab = caseActiveStyle.Render("Match Case")
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Left,
		icon+" ",
		queryDisplay,
		"  ",
		caseTab,
	)
	statusLine := statusStyle.Render(renderStatus(m))

	header := lipgloss.JoinVertical(lipgloss.Left, headerLine, statusLine)
	return headerStyle.Width(m.width - 2).Render(header)
}

// renderStatus renders the status information
func renderStatus(m *Model) string {
	name := filepath.Base(m.file)
	if m.query == "" {
		return fmt.Sprintf("Type to search %s (tab: toggle case, enter: open, esc: quit)", name)
	}
	switch len(m.matches) {
	case 0:
		return fmt.Sprintf("No matches in %s", name)
	case 1:
		return fmt.Sprintf("1 match in %s", name)
	default:
		return fmt.Sprintf("%d matches in %s", len(m.matches), name)
	}
}

// renderResults renders the visible slice of the results list
func renderResults(m *Model) string {
	if len(m.matches) == 0 {
		return ""
	}

	availableWidth := m.width - 4
	endIdx := min(m.resultsOffset+visibleResults, len(m.matches))

	var lines []string
	for i := m.resultsOffset; i < endIdx; i++ {
		line := formatResult(m, m.matches[i], availableWidth)
		if i == m.selectedIndex {
			line = selectedResultStyle.Render(line)
		} else {
			line = resultStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatResult lays out a result as: text | line:column
func formatResult(m *Model, match search.Match, width int) string {
	info := fmt.Sprintf("%d:%d", match.Line, match.Column)
	infoWidth := min(max(len(info)+2, 12), width/3)
	codeWidth := max(width-infoWidth, 10)

	code := lipgloss.NewStyle().Width(codeWidth).MaxHeight(1).
		Render(highlightQuery(m.query, match.Text, m.ignoreCase))
	infoStyled := lineInfoStyle.Width(infoWidth).Render(info)

	return lipgloss.NewStyle().Width(width).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, code, infoStyled))
}

// highlightQuery highlights every occurrence of query in text
func highlightQuery(query, text string, ignoreCase bool) string {
	spans := search.Spans(text, query, ignoreCase)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s[0]])
		b.WriteString(highlightStyle.Render(text[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// renderPreview renders the lines around the selected match
func renderPreview(m *Model, maxHeight int) string {
	if m.previewError != nil {
		return errorStyle.Render("Error loading preview: " + m.previewError.Error())
	}
	if m.preview == nil {
		return ""
	}

	lines := []string{previewHeaderStyle.Render(m.preview.File)}
	for i, line := range m.preview.Lines {
		if len(lines) >= maxHeight-1 {
			break
		}

		lineNum := fmt.Sprintf("%d", m.preview.StartLine+i)
		if i+1 == m.preview.HitLine {
			lineNum = hitLineNumberStyle.Render(lineNum)
			line = highlightQuery(m.query, line, m.ignoreCase)
		} else {
			lineNum = lineNumberStyle.Render(lineNum)
		}
		lines = append(lines, lineNum+" "+line)
	}

	return previewStyle.Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
