// glyphkit is a terminal 2D game kit: a handful of built-in games, an
// SSH server for remote play, and tooling for starting your own game.
//
// Usage:
//
//	glyphkit list              - List available games
//	glyphkit play <game>       - Play a game
//	glyphkit menu              - Start menu to pick games interactively
//	glyphkit serve             - Start SSH server for remote play
//	glyphkit scores <game>     - Show high scores for a game
//	glyphkit new <template>    - Generate a new game project
//	glyphkit doctor            - Check the local environment
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.glyphkit/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/glyphkit/glyphkit/internal/games/dodge"
	_ "github.com/glyphkit/glyphkit/internal/games/paddle"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphkit",
	Short: "glyphkit - a 2D game kit for your terminal",
	Long: `glyphkit is a terminal game kit with built-in games and tooling
for building your own.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  new      - Generate a new game project from a template
  doctor   - Check that the local environment can run games

Examples:
  glyphkit list
  glyphkit play paddle
  glyphkit menu
  glyphkit serve --ssh :2222
  glyphkit new paddle mygame
  glyphkit doctor`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glyphkit/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(doctorCmd)
}
