package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordsearch/internal/config"
	"github.com/vovakirdan/tui-wordsearch/internal/words"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List word packs",
	Long: `Shows the built-in word packs and any YAML packs found in the packs
directory (--packs, WORDSEARCH_PACKS or ~/.wordsearch/packs).

A pack file looks like:

  id: planets
  name: Planets
  words: [mercury, venus, earth, mars]

A pack with the same id as a built-in one replaces it.`,
	Run: runPacks,
}

func runPacks(_ *cobra.Command, _ []string) {
	dir := flagPacksDir
	if dir == "" {
		dir = config.UserPacksDir()
	}

	catalog, err := words.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading packs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Word packs:")
	fmt.Println()
	fmt.Printf("  %-12s  %-20s  %-5s  %s\n", "ID", "Name", "Words", "Source")
	fmt.Printf("  %-12s  %-20s  %-5s  %s\n", "--", "----", "-----", "------")

	for _, p := range catalog.Packs() {
		source := "built-in"
		if p.FilePath != "" {
			source = p.FilePath
		}
		fmt.Printf("  %-12s  %-20s  %-5d  %s\n", p.ID, p.Name, len(p.Words), source)
	}

	fmt.Println()
	fmt.Println("Run 'wordsearch play wordsearch_endless --category <id>' to play a pack.")
}
