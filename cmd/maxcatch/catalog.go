package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"maxcatch/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the bonus catalog",
	Long:  `Shows every bonus type the game can spawn, with points and fall speed.`,
	Run:   runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runCatalog(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Catalog) == 0 {
		fmt.Println("No bonuses configured.")
		return
	}

	fmt.Println("Bonus catalog:")
	fmt.Println()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, b := range cfg.Catalog {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %6s  %5s\n", maxNameLen, "Name", "Points", "Speed")
	fmt.Printf("  %-*s  %6s  %5s\n", maxNameLen, "----", "------", "-----")

	// Print bonuses
	for _, b := range cfg.Catalog {
		fmt.Printf("  %-*s  %6d  %5.0f\n", maxNameLen, b.Name, b.Points, b.Speed)
	}

	fmt.Println()
	fmt.Println("Run 'maxcatch play' to start a game.")
}
