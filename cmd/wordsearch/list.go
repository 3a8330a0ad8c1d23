package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered word search mode.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, g.ID, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'wordsearch play <id>' to play a mode.")
}
