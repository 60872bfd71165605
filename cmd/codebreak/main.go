// codebreak turns source code listings into playable Breakout: every
// token of a listing becomes a brick.
//
// Usage:
//
//	codebreak play [file]    - Play against a source file (or the built-in listing)
//	codebreak serve          - Start SSH server for remote play
//	codebreak scores         - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.codebreak/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codebreak",
	Short: "Code Break - Play Breakout against your source code",
	Long: `Code Break lays the lines of a source file out as brick rows and
lets you knock the tokens off with a ball, straight in your terminal.

Available commands:
  play     - Play against a source file
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  codebreak play
  codebreak play main.c --anchor 120
  codebreak serve --ssh :2222
  codebreak scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.codebreak/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
