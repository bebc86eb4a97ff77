package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/metrics"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. Sessions share nothing
but the game config, which is loaded once at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tui-flappy/host_key

Metrics:
  - With --metrics, Prometheus metrics are served on /metrics at that address

Examples:
  flappy serve                           # Listen on :23234 with auto-generated key
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key
  flappy serve --metrics :9090           # Also expose /metrics

Users can connect with:
  ssh localhost -p 23234`,
	Run: run(runServe),
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics listen address (empty disables)")
}

func runServe(_ []string) error {
	gameCfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(os.Stderr, "flappy-ssh")
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort cleanup
	if cfgPath != "" {
		logger.Info("loaded config", "path", cfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	if flagMetricsAddr != "" {
		msrv, err := m.Listen(flagMetricsAddr)
		if err != nil {
			return err
		}
		go func() {
			if err := msrv.Serve(); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
		defer msrv.Shutdown(context.Background()) //nolint:errcheck // Best-effort shutdown
		logger.Info("serving metrics", "address", msrv.Addr())
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Engine = gameCfg.Engine()
	cfg.Logger = logger
	cfg.Metrics = m

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting flappy SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
