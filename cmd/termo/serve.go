package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termo/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagRate        int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the termo SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own puzzle, starting on level 1.
Runs are stored per-server under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.termo/host_key

Examples:
  termo serve                           # Listen on :23234 with auto-generated key
  termo serve --ssh :2222               # Listen on port 2222
  termo serve --host-key ./my_host_key  # Use specific host key
  termo serve --rate 0                  # Disable the connection limiter

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagRate, "rate", def.ConnectionsPerMinute, "New connections per minute per host (0 disables)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Environment overrides apply after .env is loaded, and only to unset flags
	if !cmd.Flags().Changed("ssh") {
		flagSSHAddr = envOr("TERMO_SSH_ADDR", flagSSHAddr)
	}
	if !cmd.Flags().Changed("host-key") {
		flagHostKey = envOr("TERMO_HOST_KEY", flagHostKey)
	}

	game, dict, err := loadPuzzle()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.ConnectionsPerMinute = flagRate
	cfg.TickRate = flagFPS
	cfg.Game = game
	cfg.Dict = dict

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting termo SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
