package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// keepFlags restores every command flag when the test ends.
func keepFlags(t *testing.T) {
	t.Helper()
	seed, cfg, level, file := flagSeed, flagConfig, flagLogLevel, flagLogFile
	runs, speed, timeout := flagRuns, flagSpeed, flagTimeout
	metricsAddr := flagMetricsAddr
	t.Cleanup(func() {
		flagSeed, flagConfig, flagLogLevel, flagLogFile = seed, cfg, level, file
		flagRuns, flagSpeed, flagTimeout = runs, speed, timeout
		flagMetricsAddr = metricsAddr
	})

	t.Setenv("HOME", t.TempDir())
	flagConfig = ""
	flagLogLevel = "info"
	flagLogFile = ""
}

func TestOpenLoggerPrefersLogFile(t *testing.T) {
	keepFlags(t)
	flagLogFile = filepath.Join(t.TempDir(), "logs", "flappy.log")

	var stderr bytes.Buffer
	logger, closer, err := openLogger(&stderr, "test")
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Info("hello", "n", 1)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected message", data)
	}
	if stderr.Len() != 0 {
		t.Errorf("fallback received %q with a log file set", stderr.String())
	}
}

func TestOpenLoggerFallback(t *testing.T) {
	keepFlags(t)

	var out bytes.Buffer
	logger, closer, err := openLogger(&out, "test")
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	defer closer.Close()
	logger.Info("hello")
	if !strings.Contains(out.String(), "hello") {
		t.Errorf("fallback output = %q, expected message", out.String())
	}

	discard, discardCloser, err := openLogger(nil, "test")
	if err != nil || discard == nil {
		t.Fatalf("openLogger(nil) = %v, %v", discard, err)
	}
	discardCloser.Close()
}

func TestOpenLoggerBadLevel(t *testing.T) {
	keepFlags(t)
	flagLogLevel = "loud"

	if _, _, err := openLogger(&bytes.Buffer{}, "test"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRunSimRejectsBadFlags(t *testing.T) {
	keepFlags(t)

	tests := []struct {
		name  string
		runs  int
		speed float64
	}{
		{"zero runs", 0, 1},
		{"zero speed", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagRuns, flagSpeed = tt.runs, tt.speed
			if err := runSim(nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunSimLogsToFile(t *testing.T) {
	keepFlags(t)
	flagLogFile = filepath.Join(t.TempDir(), "sim.log")
	flagRuns = 1
	flagSpeed = 4
	flagSeed = 1
	flagTimeout = 200 * time.Millisecond

	if err := runSim(nil); err != nil {
		t.Fatalf("runSim() failed: %v", err)
	}

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	// Either the single run ended or the timeout cut it short.
	if !strings.Contains(string(data), "game over") && !strings.Contains(string(data), "timeout reached") {
		t.Errorf("sim log = %q, expected a game over or timeout entry", data)
	}
}

func TestRunServeReturnsListenError(t *testing.T) {
	keepFlags(t)
	flagLogFile = filepath.Join(t.TempDir(), "serve.log")
	flagMetricsAddr = "no-port"

	err := runServe(nil)
	if err == nil {
		t.Fatal("expected an error for a bad metrics address")
	}
	if !strings.Contains(err.Error(), "metrics") {
		t.Errorf("error = %v, expected metrics listen failure", err)
	}
}
