// Package cli implements the ahk command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ahk "github.com/spyoungtech/ahk-rewrite"
)

var (
	// Flags that apply to all commands
	cfgFile    string
	exePath    string
	scriptPath string
	timeout    time.Duration
	verbose    bool

	// The loaded configuration
	cfg *Config

	// Version information - set by main
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "none"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ahk",
	Short: "ahk drives Windows desktop automation from the command line",
	Long: `ahk launches an AutoHotkey daemon process and sends it automation
commands: mouse movement, keystrokes, window management, and screen queries.

The AutoHotkey executable is discovered via the AHK_PATH environment
variable, PATH, and the default install location, or set explicitly with
--exe or a config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override the config file
		if exePath != "" {
			cfg.ExecutablePath = exePath
		}

		if scriptPath != "" {
			cfg.ScriptPath = scriptPath
		}

		if timeout > 0 {
			cfg.Timeout = timeout
		}

		return nil
	},
}

// SetVersionInfo records build metadata passed in from main.
func SetVersionInfo(version, buildTime, commit string) {
	Version = version
	BuildTime = buildTime
	Commit = commit
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newEngine builds an engine from the merged configuration.
func newEngine() *ahk.Engine {
	opts := []ahk.Option{}

	if cfg.ExecutablePath != "" {
		opts = append(opts, ahk.WithExecutablePath(cfg.ExecutablePath))
	}

	if cfg.ScriptPath != "" {
		opts = append(opts, ahk.WithScriptPath(cfg.ScriptPath))
	}

	if cfg.Timeout > 0 {
		opts = append(opts, ahk.WithRequestTimeout(cfg.Timeout))
	}

	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, ahk.WithLogger(logger))
		opts = append(opts, ahk.WithStderrCallback(func(line string) {
			color.New(color.FgYellow).Fprintf(os.Stderr, "daemon: %s\n", line)
		}))
	}

	return ahk.New(opts...)
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	RootCmd.PersistentFlags().StringVar(&exePath, "exe", "", "path to the AutoHotkey executable")
	RootCmd.PersistentFlags().StringVar(&scriptPath, "script", "", "path to the daemon script")
	RootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-command timeout (default 60s)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
