package config

import (
	"errors"
	"testing"
)

func env(vars map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuild(t *testing.T) {
	cfg, err := Build([]string{"minigrep", "duct", "poem.txt"}, env(nil))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Query != "duct" {
		t.Errorf("query = %q, want duct", cfg.Query)
	}
	if cfg.FilePath != "poem.txt" {
		t.Errorf("file path = %q, want poem.txt", cfg.FilePath)
	}
	if cfg.IgnoreCase {
		t.Error("ignore case should be off when IGNORE_CASE is unset")
	}
}

func TestBuild_IgnoreCasePresence(t *testing.T) {
	for _, value := range []string{"1", "0", ""} {
		cfg, err := Build([]string{"minigrep", "q", "f"}, env(map[string]string{IgnoreCaseEnv: value}))
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if !cfg.IgnoreCase {
			t.Errorf("IGNORE_CASE=%q: ignore case = false, want true", value)
		}
	}
}

func TestBuild_ExtraArgumentsIgnored(t *testing.T) {
	cfg, err := Build([]string{"minigrep", "q", "f", "extra"}, env(nil))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if cfg.Query != "q" || cfg.FilePath != "f" {
		t.Errorf("cfg = %+v, want query q and file f", cfg)
	}
}

func TestBuild_MissingArguments(t *testing.T) {
	tests := []struct {
		args []string
		got  int
	}{
		{args: nil, got: 0},
		{args: []string{"minigrep"}, got: 0},
		{args: []string{"minigrep", "duct"}, got: 1},
	}

	for _, tt := range tests {
		lookups := 0
		lookup := func(string) (string, bool) {
			lookups++
			return "", false
		}

		_, err := Build(tt.args, lookup)
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("Build(%q) error = %v, want *ArgumentError", tt.args, err)
		}
		if argErr.Got != tt.got {
			t.Errorf("Build(%q) Got = %d, want %d", tt.args, argErr.Got, tt.got)
		}
		if lookups != 0 {
			t.Errorf("Build(%q) read the environment before failing", tt.args)
		}
	}
}
