package wordsearch

import "github.com/vovakirdan/tui-wordsearch/internal/puzzle"

// Level describes one campaign puzzle.
type Level struct {
	Name       string
	Category   string
	Size       int
	Directions puzzle.DirectionSet
	Words      int
}

// campaign levels, easiest first. Directions widen and grids grow.
var levels = []Level{
	{Name: "First Steps", Category: "animals", Size: 8, Directions: puzzle.VeryEasy, Words: 5},
	{Name: "Two Ways", Category: "fruits", Size: 9, Directions: puzzle.Easy, Words: 6},
	{Name: "Kitchen Drawer", Category: "kitchen", Size: 10, Directions: puzzle.Easy, Words: 7},
	{Name: "Weather Report", Category: "weather", Size: 10, Directions: puzzle.Medium, Words: 7},
	{Name: "Sound Check", Category: "music", Size: 11, Directions: puzzle.Medium, Words: 8},
	{Name: "Deep Blue", Category: "ocean", Size: 12, Directions: puzzle.Medium, Words: 9},
	{Name: "Night Sky", Category: "space", Size: 12, Directions: puzzle.Hard, Words: 8},
	{Name: "Safari", Category: "animals", Size: 13, Directions: puzzle.Hard, Words: 10},
	{Name: "Orchard", Category: "fruits", Size: 14, Directions: puzzle.Hard, Words: 11},
	{Name: "Gopher", Category: "golang", Size: 15, Directions: puzzle.Hard, Words: 12},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// LevelAt returns campaign level n (1-indexed).
func LevelAt(n int) (Level, bool) {
	if n < 1 || n > len(levels) {
		return Level{}, false
	}
	return levels[n-1], true
}
