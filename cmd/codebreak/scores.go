package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codebrk/codebreak/internal/platform/tui"
	"github.com/codebrk/codebreak/internal/storage"
)

var (
	flagScoresSource      string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 recorded scores, highest first.

Examples:
  codebreak scores
  codebreak scores --source main.c
  codebreak scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSource, "source", "", "Only show scores for this source file")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse scores in a scrollable table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		model := tui.NewScoreboardModel(store, flagScoresSource, width, height)
		if _, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run(); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresSource != "" {
		scores, err = store.TopScoresFor(flagScoresSource, 10)
	} else {
		scores, err = store.TopScores(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Code Break - High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'codebreak play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-24s  %s\n", "Rank", "Score", "Bricks", "Source", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-24s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range scores {
		src := entry.Source
		if len(src) > 24 {
			src = "..." + src[len(src)-21:]
		}
		fmt.Printf("  %-4d  %-10d  %-7d  %-24s  %s\n",
			i+1, entry.Score, entry.Bricks, src, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Sessions: %d   Best: %d   Avg: %.0f   Bricks broken: %d\n",
			stats.Sessions, stats.HighScore, stats.AvgScore, stats.TotalBricks)
	}
}
