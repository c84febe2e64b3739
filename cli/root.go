package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/editor"
	"github.com/takaishi/minigrep/grep"
	"github.com/takaishi/minigrep/logger"
	"github.com/takaishi/minigrep/tui"
)

type flags struct {
	configPath  string
	interactive bool
	editor      string
	color       string
	vimgrep     bool
	logLevel    string
	logFormat   string
	logFile     string
}

// NewRootCommand creates the root cobra command
func NewRootCommand() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "minigrep [flags] [--] <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: `Print the lines of a file that contain a query.

Set IGNORE_CASE (to any value) for a case-insensitive search.
Use -- to end flag parsing when the query starts with a dash:

  minigrep -- -three poem.txt`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors (main.go handles it)
		RunE: func(cmd *cobra.Command, args []string) error {
			// Positional arguments are checked before anything touches the disk
			cfg, err := config.Build(append([]string{cmd.Root().Name()}, args...), os.LookupEnv)
			if err != nil {
				return err
			}

			settings, err := resolveSettings(cmd, f)
			if err != nil {
				return err
			}

			log, closeLog, err := logger.Setup(logger.Config{
				Level:  logger.ParseLevel(settings.Log.Level),
				Format: settings.Log.Format,
				File:   settings.Log.File,
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("failed to setup logging: %w", err)
			}
			defer closeLog()
			log = log.With("component", "cli")
			log.Debug("search started", "query", cfg.Query, "path", cfg.FilePath, "ignore_case", cfg.IgnoreCase)

			if f.interactive {
				return runInteractive(cfg, settings, log)
			}

			return grep.Run(cfg, grep.Options{
				Color:   settings.Color,
				Vimgrep: f.vimgrep,
				Logger:  log,
			}, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "Settings file (default ~/.config/minigrep/config.yaml)")
	rootCmd.Flags().BoolVar(&f.interactive, "interactive", false, "Browse matches interactively")
	rootCmd.Flags().StringVar(&f.editor, "editor", "", "Editor used by --interactive to open a match")
	rootCmd.Flags().StringVar(&f.color, "color", "", "Highlight matches: auto, always or never")
	rootCmd.Flags().BoolVar(&f.vimgrep, "vimgrep", false, "Print file:line:column:text records")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&f.logFormat, "log-format", "", "Log format (text or json)")
	rootCmd.Flags().StringVar(&f.logFile, "log-file", "", "Also write logs to this file")

	return rootCmd
}

// resolveSettings loads the settings file and lets explicit flags win
func resolveSettings(cmd *cobra.Command, f flags) (config.Settings, error) {
	settings, err := config.LoadSettings(f.configPath)
	if err != nil {
		return settings, err
	}

	changed := cmd.Flags().Changed
	if changed("editor") {
		settings.Editor = f.editor
	}
	if changed("color") {
		switch f.color {
		case "auto", "always", "never":
			settings.Color = f.color
		default:
			return settings, fmt.Errorf("invalid --color %q (want auto, always or never)", f.color)
		}
	}
	if changed("log-level") {
		settings.Log.Level = f.logLevel
	}
	if changed("log-format") {
		settings.Log.Format = f.logFormat
	}
	if changed("log-file") {
		settings.Log.File = f.logFile
	}
	return settings, nil
}

// runInteractive reads the file once, lets the user pick a match and
// opens it in the editor.
func runInteractive(cfg config.Config, settings config.Settings, log *slog.Logger) error {
	contents, matches, err := grep.Load(cfg)
	if err != nil {
		return err
	}
	log.Debug("interactive session", "matches", len(matches))

	model := tui.New(tui.Options{
		File:       cfg.FilePath,
		Contents:   contents,
		Query:      cfg.Query,
		IgnoreCase: cfg.IgnoreCase,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	match, ok := model.Chosen()
	if !ok {
		return nil
	}

	ed, err := editor.DetectEditor(settings.Editor, os.LookupEnv)
	if err != nil {
		return err
	}
	log.Debug("opening editor", "editor", ed, "line", match.Line, "column", match.Column)
	if err := editor.OpenFile(ed, cfg.FilePath, match.Line, match.Column); err != nil {
		return fmt.Errorf("failed to open %s in %s: %w", cfg.FilePath, ed, err)
	}
	return nil
}
