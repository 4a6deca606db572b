package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MaierG74/cutlist/internal/config"
	"github.com/MaierG74/cutlist/internal/engine"
)

func newCompareCommand(configPath *string) *cobra.Command {
	var (
		sheet    string
		sheetQty int
		kerf     float64
		budget   time.Duration
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "compare <parts-file>",
		Short: "Run every packing algorithm on the same input and report the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("kerf") {
				kerf = cfg.Kerf
			}
			if !cmd.Flags().Changed("budget") {
				budget = cfg.TimeBudget
			}

			parts, err := loadParts(args[0])
			if err != nil {
				return err
			}
			stocks, err := parseStock(sheet, sheetQty, kerf)
			if err != nil {
				return err
			}

			reports, err := engine.CompareAlgorithms(parts, stocks, budget)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON("", reports)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ALGORITHM\tSHEETS\tEFFICIENCY\tWASTE (sq mm)\tCUTS\tCUT LENGTH (mm)\tLARGEST OFFCUT\tUNPLACED\tTIME")
			for _, r := range reports {
				fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.0f\t%d\t%.0f\t%.0f\t%d\t%s\n",
					r.Algorithm, r.SheetsUsed, r.Efficiency, r.WasteArea,
					r.Cuts, r.CutLength, r.LargestOffcut, r.UnplacedCount,
					r.Elapsed.Round(time.Millisecond))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "2440x1220", "stock sheet size as LENGTHxWIDTH in mm")
	cmd.Flags().IntVar(&sheetQty, "sheet-qty", 100, "number of stock sheets available")
	cmd.Flags().Float64Var(&kerf, "kerf", 0, "saw kerf in mm (default from config)")
	cmd.Flags().DurationVar(&budget, "budget", 0, "time budget for the deep algorithm (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit reports as JSON instead of a table")

	return cmd
}
