package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codebrk/codebreak/internal/breakout"
	"github.com/codebrk/codebreak/internal/config"
	"github.com/codebrk/codebreak/internal/core"
	"github.com/codebrk/codebreak/internal/platform/tui"
	"github.com/codebrk/codebreak/internal/source"
	"github.com/codebrk/codebreak/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAnchor     int
	flagLines      int
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Play against a source file",
	Long: `Start a session against the given source file. Each line becomes a
brick row, each token a brick. Without a file argument the built-in
instruction listing is used.

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Launch ball
  N                - Re-read the file and rebuild bricks
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Hovering a brick with the mouse shows its full source line.

Difficulty options:
  easy   - Slower ball, wider paddle
  normal - Stock physics
  hard   - Faster ball, narrower paddle

Examples:
  codebreak play
  codebreak play main.c
  codebreak play main.c --anchor 120
  codebreak play main.c --difficulty hard
  codebreak play --config ./my-codebreak.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagAnchor, "anchor", 0, "1-based line the brick field starts from")
	playCmd.Flags().IntVar(&flagLines, "lines", 0, "Cap on brick rows (0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagLines > 0 {
		cfg.Gameplay.MaxLines = flagLines
	}

	var provider source.Provider
	sourceName := "placeholder"
	if len(args) == 1 {
		path := args[0]
		if _, statErr := os.Stat(path); statErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read %s: %v\n", path, statErr)
			os.Exit(1)
		}
		provider = source.NewFileProvider(path, flagAnchor)
		sourceName = path
	}

	// Terminal size; fall back to a standard window when not a TTY
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game := breakout.New(provider, cfg)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, sourceName, cfg, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
