package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered game variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		board := "NxN"
		if g.FixedSize > 0 {
			board = fmt.Sprintf("%dx%d", g.FixedSize, g.FixedSize)
		}
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, g.ID, board, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tictactoe play <id>' to play a game.")
}
