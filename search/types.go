package search

// Match is a matching line together with where the query was found
type Match struct {
	Line   int // 1-based
	Column int // 1-based byte offset of the first occurrence
	Text   string
}
