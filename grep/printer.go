package grep

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/takaishi/minigrep/search"
)

// printer writes result lines, highlighting the query when color is on
type printer struct {
	w          io.Writer
	query      string
	ignoreCase bool
	highlight  *lipgloss.Style
}

func newPrinter(w io.Writer, color, query string, ignoreCase bool) *printer {
	p := &printer{w: w, query: query, ignoreCase: ignoreCase}

	r := lipgloss.NewRenderer(w)
	switch color {
	case "never":
		return p
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	}
	if r.ColorProfile() == termenv.Ascii {
		return p
	}

	style := r.NewStyle().
		Foreground(lipgloss.Color("220")).
		Bold(true)
	p.highlight = &style
	return p
}

func (p *printer) printLine(line string) error {
	if p.highlight == nil || line == search.NoMatches {
		_, err := fmt.Fprintln(p.w, line)
		return err
	}

	spans := search.Spans(line, p.query, p.ignoreCase)
	if len(spans) == 0 {
		_, err := fmt.Fprintln(p.w, line)
		return err
	}

	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(line[last:s[0]])
		b.WriteString(p.highlight.Render(line[s[0]:s[1]]))
		last = s[1]
	}
	b.WriteString(line[last:])

	_, err := fmt.Fprintln(p.w, b.String())
	return err
}
