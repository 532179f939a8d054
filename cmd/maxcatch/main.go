// maxcatch is a terminal catch-the-falling-bonus arcade game.
//
// Usage:
//
//	maxcatch play            - Play the game
//	maxcatch catalog         - Show the bonus catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maxcatch",
	Short: "Max Catch - Catch falling bonuses in your terminal",
	Long: `Max Catch is a terminal arcade game. Bonuses fall from the top of the
field; move Max left and right to catch them before they hit the ground.
Every catch scores points, every miss costs them, and too many misses
end the game.

Available commands:
  play     - Play the game
  catalog  - Show the bonus catalog

Examples:
  maxcatch play
  maxcatch play --infinite
  maxcatch play --config ./my-catcher.yaml
  maxcatch catalog`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
}
