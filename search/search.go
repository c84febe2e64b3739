// Package search implements the line scan behind minigrep.
//
// Results are substrings of the contents passed in, so they share its
// backing memory and stay valid for as long as the caller keeps them.
package search

import "strings"

// NoMatches is returned by Search in place of an empty result.
const NoMatches = "No matches in the file."

// Lines splits contents into lines. A line ends at "\n" or "\r\n" and the
// final line ending is optional, so "a\nb\n" yields two lines.
func Lines(contents string) []string {
	if contents == "" {
		return nil
	}

	terminated := strings.HasSuffix(contents, "\n")
	if terminated {
		contents = contents[:len(contents)-1]
	}

	lines := strings.Split(contents, "\n")
	last := len(lines) - 1
	for i, line := range lines {
		// A lone "\r" on an unterminated last line is content, not a line ending
		if i == last && !terminated {
			break
		}
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Search returns every line of contents containing query, compared byte
// for byte. When nothing matches the result is the single line NoMatches,
// never an empty slice.
func Search(query, contents string) []string {
	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}

	if len(results) == 0 {
		results = append(results, NoMatches)
	}
	return results
}

// SearchCaseInsensitive returns every line of contents whose lowercased
// form contains the lowercased query. Lines keep their original casing.
// Unlike Search it returns an empty slice when nothing matches.
func SearchCaseInsensitive(query, contents string) []string {
	query = lower(query)

	var results []string
	for _, line := range Lines(contents) {
		if strings.Contains(lower(line), query) {
			results = append(results, line)
		}
	}
	return results
}
