// cutlist optimizes rectangular cut lists onto stock sheets.
//
// Build:
//
//	go build -o cutlist ./cmd/cutlist
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MaierG74/cutlist/internal/config"
)

func main() {
	command := newRootCommand()
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cutlist",
		Short: "Optimize rectangular cut lists onto stock sheets",
		Long: `cutlist packs rectangular furniture parts onto stock sheets, accounting
for saw kerf and wood grain direction. Part lists are read from CSV,
Excel (.xlsx), or DXF files. Layouts are written as JSON.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(),
		"path to the config file")

	cmd.AddCommand(newPackCommand(&configPath))
	cmd.AddCommand(newCompareCommand(&configPath))
	cmd.AddCommand(newEstimateCommand(&configPath))

	return cmd
}
