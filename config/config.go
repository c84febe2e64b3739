package config

import (
	"fmt"
	"os"
)

// IgnoreCaseEnv switches on case-insensitive search when present,
// whatever its value.
const IgnoreCaseEnv = "IGNORE_CASE"

// Config holds what a single search needs
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// ArgumentError is returned by Build when the query or file path is missing
type ArgumentError struct {
	Got int // positional arguments after the program name
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("missing arguments: need <query> <file_path>, got %d", e.Got)
}

// LookupEnv matches os.LookupEnv so tests can supply their own environment
type LookupEnv func(key string) (string, bool)

// Build resolves a Config from the process argument list (program name
// first) and the environment.
func Build(args []string, lookupEnv LookupEnv) (Config, error) {
	if len(args) < 3 {
		got := len(args) - 1
		if got < 0 {
			got = 0
		}
		return Config{}, &ArgumentError{Got: got}
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	_, ignoreCase := lookupEnv(IgnoreCaseEnv)

	return Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: ignoreCase,
	}, nil
}
