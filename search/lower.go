package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower applies full Unicode lowercasing, including the word-final
// sigma rule (ΟΔΟΣ becomes οδος), which strings.ToLower does not.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
