package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/codebrk/codebreak/internal/config"
	"github.com/codebrk/codebreak/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeFile   string
	flagServeAnchor int
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Code Break SSH server",
	Long: `Start an SSH server that drops every connecting user into a play
session. All sessions play against the same source file (or the
built-in listing) and share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.codebreak/host_key

Examples:
  codebreak serve                           # Listen on :23234 with auto-generated key
  codebreak serve --ssh :2222               # Listen on port 2222
  codebreak serve --file main.c             # Serve bricks from main.c
  codebreak serve --host-key ./my_host_key  # Use specific host key
  codebreak serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeFile, "file", "", "Source file to serve bricks from (built-in listing if not specified)")
	serveCmd.Flags().IntVar(&flagServeAnchor, "anchor", 0, "1-based line the brick field starts from")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		SourcePath:  flagServeFile,
		AnchorLine:  flagServeAnchor,
		Game:        gameCfg,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Code Break SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
