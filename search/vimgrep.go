package search

import (
	"fmt"
	"strings"
)

// FormatVimgrepLine renders a match the way `rg --vimgrep` does
// Format: file:line:column:text
func FormatVimgrepLine(file string, m Match) string {
	return fmt.Sprintf("%s:%d:%d:%s", file, m.Line, m.Column, m.Text)
}

// FormatVimgrepOutput renders one vimgrep record per match, newline terminated
func FormatVimgrepOutput(file string, matches []Match) string {
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(FormatVimgrepLine(file, m))
		b.WriteByte('\n')
	}
	return b.String()
}
