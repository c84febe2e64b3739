package grep

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is wrapped by IOError when the file is not valid text
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// IOError reports a file that could not be read in full
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
