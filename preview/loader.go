package preview

import "fmt"

const (
	previewBefore = 5
	previewAfter  = 10
)

// Build returns the preview around lineNum (1-based) from lines already
// held in memory, so the file is not read a second time.
func Build(file string, lines []string, lineNum int) (*Preview, error) {
	if lineNum < 1 || lineNum > len(lines) {
		return nil, fmt.Errorf("line %d out of range (file has %d lines)", lineNum, len(lines))
	}

	// Calculate preview range
	startLine := max(lineNum-previewBefore, 1)
	endLine := min(lineNum+previewAfter, len(lines))

	return &Preview{
		File:      file,
		StartLine: startLine,
		Lines:     lines[startLine-1 : endLine],
		HitLine:   lineNum - startLine + 1,
	}, nil
}
