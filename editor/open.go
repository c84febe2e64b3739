package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Editor is the command used to open files, e.g. "code" or "vim"
type Editor string

const (
	EditorCursor Editor = "cursor"
	EditorCode   Editor = "code"
	EditorVim    Editor = "vim"
)

var (
	defaultLookPath = exec.LookPath
	// lookPath is swapped out in tests
	lookPath = defaultLookPath
)

// DetectEditor picks an editor: preferred when set, then $VISUAL and
// $EDITOR, then the first of cursor, code and vim found on PATH.
func DetectEditor(preferred string, lookupEnv func(string) (string, bool)) (Editor, error) {
	if preferred != "" {
		return Editor(preferred), nil
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return Editor(strings.TrimSpace(v)), nil
		}
	}

	for _, ed := range []Editor{EditorCursor, EditorCode, EditorVim} {
		if _, err := lookPath(string(ed)); err == nil {
			return ed, nil
		}
	}

	return "", fmt.Errorf("no editor found (set $EDITOR or install cursor, code or vim)")
}

// Command builds the command that opens file at line and column.
// An editor value may carry arguments, as $EDITOR often does ("code -w").
func Command(editor Editor, file string, line, column int) (*exec.Cmd, error) {
	fields := strings.Fields(string(editor))
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor configured")
	}
	name, args := fields[0], fields[1:]

	switch filepath.Base(name) {
	case "cursor", "code", "code-insiders":
		args = append(args, "--goto", fmt.Sprintf("%s:%d:%d", file, line, column))
	case "vim", "nvim", "vi", "nano", "micro", "hx", "kak", "emacs":
		args = append(args, fmt.Sprintf("+%d", line), file)
	default:
		args = append(args, file)
	}

	return exec.Command(name, args...), nil
}

// OpenFile opens a file in the specified editor at the given line and column.
// Terminal editors take over the current terminal until they exit; GUI
// editors are started in the background.
func OpenFile(editor Editor, file string, line, column int) error {
	cmd, err := Command(editor, file, line, column)
	if err != nil {
		return err
	}

	if isTerminalEditor(cmd.Args[0]) {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd.Run()
	}

	// Discard output to prevent any interference
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// Don't wait for the command to complete - let it run in background
	go cmd.Wait()

	return nil
}

func isTerminalEditor(name string) bool {
	switch filepath.Base(name) {
	case "vim", "nvim", "vi", "nano", "micro", "hx", "kak", "emacs":
		return true
	}
	return false
}
