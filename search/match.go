package search

import "strings"

// Find selects the same lines as Search (or SearchCaseInsensitive when
// ignoreCase is set) and reports their positions. It never returns the
// NoMatches sentinel.
func Find(query, contents string, ignoreCase bool) []Match {
	if ignoreCase {
		query = lower(query)
	}

	var matches []Match
	for i, line := range Lines(contents) {
		col := index(line, query, ignoreCase)
		if col < 0 {
			continue
		}
		matches = append(matches, Match{
			Line:   i + 1,
			Column: col + 1,
			Text:   line,
		})
	}
	return matches
}

// index returns the byte offset of query in line, or -1. query must
// already be lowercased when ignoreCase is set.
func index(line, query string, ignoreCase bool) int {
	if !ignoreCase {
		return strings.Index(line, query)
	}

	lowered := lower(line)
	idx := strings.Index(lowered, query)
	if idx < 0 {
		return -1
	}
	// Lowercasing changed byte lengths, offsets no longer line up
	if len(lowered) != len(line) {
		return 0
	}
	return idx
}

// Spans returns the [start, end) byte ranges of every non-overlapping
// occurrence of query in line. It returns nil for an empty query, or when
// lowercasing changes the length of line under ignoreCase.
func Spans(line, query string, ignoreCase bool) [][2]int {
	if query == "" {
		return nil
	}

	haystack := line
	if ignoreCase {
		haystack = lower(line)
		query = lower(query)
		if len(haystack) != len(line) {
			return nil
		}
	}

	var spans [][2]int
	offset := 0
	for {
		idx := strings.Index(haystack[offset:], query)
		if idx == -1 {
			break
		}
		start := offset + idx
		end := start + len(query)
		spans = append(spans, [2]int{start, end})
		offset = end
	}
	return spans
}
