package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/games/klotski"
	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Klotski SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a level picker.
Solves are logged per-server under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.klotski/host_key

Examples:
  klotski serve                           # Listen on :23234 with auto-generated key
  klotski serve --ssh :2222               # Listen on port 2222
  klotski serve --host-key ./my_host_key  # Use specific host key
  klotski serve --db ./klotski.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	_, lvls, err := loadLevelSet()
	if err != nil {
		return err
	}

	serverLogger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "klotski-ssh",
		Level:           logger.GetLevel(),
	})

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      klotski.GameID,
		Levels:      lvls,
		Logger:      serverLogger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	serverLogger.Info("connect with: ssh localhost -p <port>", "address", cfg.Address)
	serverLogger.Info("press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return err
	}
	return nil
}
