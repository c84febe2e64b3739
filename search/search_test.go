package search

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

func TestSearch_OneResult(t *testing.T) {
	query := "duct"
	contents := "Rust:\nsafe, fast, productive.\nPick three."

	got := Search(query, contents)
	want := []string{"safe, fast, productive."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_CaseSensitive(t *testing.T) {
	query := "duct"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."

	got := Search(query, contents)
	want := []string{"safe, fast, productive."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	query := "rUsT"
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me."

	got := SearchCaseInsensitive(query, contents)
	want := []string{"Rust:", "Trust me."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SearchCaseInsensitive() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchCaseInsensitive_FinalSigma(t *testing.T) {
	got := SearchCaseInsensitive("ς", "ΟΔΟΣ\nάλλο")
	if diff := cmp.Diff([]string{"ΟΔΟΣ"}, got); diff != "" {
		t.Errorf("SearchCaseInsensitive() mismatch (-want +got):\n%s", diff)
	}
}

func TestNoMatches(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three."

	got := Search("monkey", contents)
	if diff := cmp.Diff([]string{NoMatches}, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	if got := SearchCaseInsensitive("monkey", contents); len(got) != 0 {
		t.Errorf("SearchCaseInsensitive() = %q, want empty", got)
	}
}

func TestSearch_EmptyContents(t *testing.T) {
	if diff := cmp.Diff([]string{NoMatches}, Search("x", "")); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
	if got := SearchCaseInsensitive("x", ""); len(got) != 0 {
		t.Errorf("SearchCaseInsensitive() = %q, want empty", got)
	}
}

func TestSearch_KeepsOrderAndDuplicates(t *testing.T) {
	contents := "b go\na go\nb go\n"

	got := Search("go", contents)
	want := []string{"b go", "a go", "b go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	contents := "one\nTwo\nthree\n"
	first := SearchCaseInsensitive("t", contents)
	second := SearchCaseInsensitive("t", contents)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated calls differ (-first +second):\n%s", diff)
	}
}

func TestSearch_CRLF(t *testing.T) {
	contents := "alpha\r\nbeta\r\ngamma\r\n"

	got := Search("a", contents)
	want := []string{"alpha", "beta", "gamma"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{name: "empty", contents: "", want: nil},
		{name: "single newline", contents: "\n", want: []string{""}},
		{name: "no trailing newline", contents: "a\nb", want: []string{"a", "b"}},
		{name: "trailing newline", contents: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", contents: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", contents: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "lone carriage return", contents: "a\r", want: []string{"a\r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Lines(tt.contents)); diff != "" {
				t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.contents, diff)
			}
		})
	}
}

var mixedInputs = []struct {
	query    string
	contents string
}{
	{query: "duct", contents: "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape."},
	{query: "", contents: "a\nb\n"},
	{query: "x", contents: ""},
	{query: "go", contents: "Go\ngo\nGO\ngopher\n\nergo"},
	{query: "Straße", contents: "STRASSE\nstraße\nStraße am See\r\n"},
	{query: "ΣΟΦ", contents: "σοφία\nΣΟΦΟΣ\nsofia"},
	{query: "No matches", contents: "No matches in the file."},
	{query: " ", contents: "one\ntwo words\n\tthree\n"},
	{query: "\r", contents: "a\r\nb\rc\n"},
}

// checkSearchProperties reports whether Search keeps exactly the lines
// containing query (or returns only NoMatches) and SearchCaseInsensitive
// keeps exactly the lines whose lowercased form contains the lowercased
// query, both in file order.
func checkSearchProperties(t *testing.T, query, contents string) bool {
	t.Helper()
	ok := true

	got := Search(query, contents)
	if !cmp.Equal(got, []string{NoMatches}) {
		for _, line := range got {
			if !strings.Contains(line, query) {
				t.Errorf("Search(%q, %q) returned %q without the query", query, contents, line)
				ok = false
			}
		}
	}

	var exact []string
	for _, line := range Lines(contents) {
		if strings.Contains(line, query) {
			exact = append(exact, line)
		}
	}
	if len(exact) == 0 {
		exact = []string{NoMatches}
	}
	if diff := cmp.Diff(exact, got); diff != "" {
		t.Errorf("Search(%q, %q) mismatch (-want +got):\n%s", query, contents, diff)
		ok = false
	}

	var folded []string
	for _, line := range Lines(contents) {
		if strings.Contains(lower(line), lower(query)) {
			folded = append(folded, line)
		}
	}
	if diff := cmp.Diff(folded, SearchCaseInsensitive(query, contents)); diff != "" {
		t.Errorf("SearchCaseInsensitive(%q, %q) mismatch (-want +got):\n%s", query, contents, diff)
		ok = false
	}
	return ok
}

func TestSearch_PropertiesOnMixedInputs(t *testing.T) {
	for _, in := range mixedInputs {
		checkSearchProperties(t, in.query, in.contents)
	}
}

func TestSearch_PropertiesRandomInputs(t *testing.T) {
	property := func(query string, lines []string) bool {
		return checkSearchProperties(t, query, strings.Join(lines, "\n"))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
