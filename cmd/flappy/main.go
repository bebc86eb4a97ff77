// flappy is a single-screen arcade game for the terminal: keep the actor in
// the gap of the scrolling obstacle.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Host independent games over SSH
//	flappy sim               - Let the autopilot play headless runs
//	flappy config            - Print the effective game config
//	flappy config validate   - Check a config file
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gap placement
//	--config <path>      - Use a specific YAML or TOML game config
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a one-button arcade game in your terminal",
	Long: `Flappy is a terminal arcade game. Jump to keep the actor inside the gap
of the scrolling obstacle; every obstacle passed scores a point.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Watch the autopilot play headless runs
  config   - Print or validate the game config

Examples:
  flappy play
  flappy play --config ./flappy.toml --watch-config
  flappy serve --ssh :2222 --metrics :9090
  flappy sim --runs 10 --speed 4`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// run adapts a command body to cobra's Run. The body returns instead of
// exiting, so its deferred cleanup finishes before os.Exit.
func run(fn func(args []string) error) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, args []string) {
		if err := fn(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig loads the game config.
// It returns the file that was used, or "" for the built-in default.
func loadConfig() (config.GameConfig, string, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return cfg, path, fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

// openLogger writes to --log-file when it is set, otherwise to fallback.
// A nil fallback discards logs.
func openLogger(fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	opts := logging.Options{Level: flagLogLevel, Prefix: prefix}
	if flagLogFile != "" {
		return logging.OpenFile(flagLogFile, opts)
	}
	if fallback == nil {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	logger, err := logging.New(fallback, opts)
	if err != nil {
		return nil, nil, err
	}
	return logger, io.NopCloser(nil), nil
}

// newRand returns the gap source for a seed; 0 means time-based.
func newRand(seed int64) engine.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
