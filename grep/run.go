// Package grep reads the file named by a Config, runs the search and
// writes the results.
package grep

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/search"
)

// Options control how results are written
type Options struct {
	Color   string // auto, always or never
	Vimgrep bool   // file:line:column:text records instead of plain lines
	Logger  *slog.Logger
}

// ReadContents reads the whole file at path. The file is closed before
// it returns.
func ReadContents(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// Results picks the search variant named by cfg
func Results(cfg config.Config, contents string) []string {
	if cfg.IgnoreCase {
		return search.SearchCaseInsensitive(cfg.Query, contents)
	}
	return search.Search(cfg.Query, contents)
}

// Load reads the file and returns its contents along with the positional
// matches, for callers that browse results instead of printing them.
func Load(cfg config.Config) (string, []search.Match, error) {
	contents, err := ReadContents(cfg.FilePath)
	if err != nil {
		return "", nil, err
	}
	return contents, search.Find(cfg.Query, contents, cfg.IgnoreCase), nil
}

// Run searches the file named by cfg and writes the outcome to w: the
// ignore-case flag on the first line, then one result per line. Nothing
// is written if the file cannot be read.
func Run(cfg config.Config, opts Options, w io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	contents, err := ReadContents(cfg.FilePath)
	if err != nil {
		return err
	}
	logger.Debug("file loaded", "path", cfg.FilePath, "bytes", len(contents))

	if opts.Vimgrep {
		matches := search.Find(cfg.Query, contents, cfg.IgnoreCase)
		logger.Debug("search finished", "matches", len(matches), "ignore_case", cfg.IgnoreCase)
		_, err := io.WriteString(w, search.FormatVimgrepOutput(cfg.FilePath, matches))
		return err
	}

	results := Results(cfg, contents)
	logger.Debug("search finished", "results", len(results), "ignore_case", cfg.IgnoreCase)

	p := newPrinter(w, opts.Color, cfg.Query, cfg.IgnoreCase)
	if _, err := fmt.Fprintln(w, strconv.FormatBool(cfg.IgnoreCase)); err != nil {
		return err
	}
	for _, line := range results {
		if err := p.printLine(line); err != nil {
			return err
		}
	}
	return nil
}
