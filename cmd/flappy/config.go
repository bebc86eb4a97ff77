package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config that play, serve and sim would use, after the
search path and defaults are applied. Redirect it to a file to start a
custom config.

Search order:
  --config <path>
  ~/.tui-flappy/flappy.yaml, ~/.tui-flappy/flappy.toml
  ./configs/flappy.yaml, ./configs/flappy.toml
  built-in defaults

Examples:
  flappy config > ~/.tui-flappy/flappy.yaml
  flappy config --format toml
  flappy config validate ./flappy.toml`,
	Run: run(runConfig),
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a game config file",
	Args:  cobra.ExactArgs(1),
	Run:   run(runValidate),
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.AddCommand(validateCmd)
}

func runConfig(_ []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}

	if path != "" {
		fmt.Fprintf(os.Stderr, "# loaded from %s\n", path)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do if stdout is gone
	return nil
}

func runValidate(args []string) error {
	if _, err := config.ReadFile(args[0]); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	fmt.Printf("%s: ok\n", args[0])
	return nil
}
