package main

import (
	"github.com/spf13/cobra"

	"github.com/MaierG74/cutlist/internal/config"
	"github.com/MaierG74/cutlist/internal/model"
)

func newEstimateCommand(configPath *string) *cobra.Command {
	var (
		sheet string
		kerf  float64
		waste float64
	)

	cmd := &cobra.Command{
		Use:   "estimate <parts-file>",
		Short: "Estimate how many sheets a part list needs, without computing a layout",
		Long: `Estimate sums part areas with a kerf allowance and divides by the sheet
area. It is a quick purchasing guide, not a packing guarantee: the
recommended count includes a configurable waste factor on top of the
raw minimum.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("kerf") {
				kerf = cfg.Kerf
			}
			if !cmd.Flags().Changed("waste") {
				waste = cfg.WastePercent
			}

			parts, err := loadParts(args[0])
			if err != nil {
				return err
			}
			stocks, err := parseStock(sheet, 1, kerf)
			if err != nil {
				return err
			}

			est := model.EstimatePurchase(parts, stocks[0], waste)
			return writeJSON("", est)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "2440x1220", "stock sheet size as LENGTHxWIDTH in mm")
	cmd.Flags().Float64Var(&kerf, "kerf", 0, "saw kerf in mm (default from config)")
	cmd.Flags().Float64Var(&waste, "waste", 0, "waste factor percent (default from config)")

	return cmd
}
