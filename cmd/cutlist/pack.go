package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MaierG74/cutlist/internal/config"
	"github.com/MaierG74/cutlist/internal/engine"
	"github.com/MaierG74/cutlist/internal/importer"
	"github.com/MaierG74/cutlist/internal/model"
)

// packOptions holds the flag values for the pack command.
type packOptions struct {
	sheet     string
	sheetQty  int
	kerf      float64
	algorithm string
	budget    time.Duration
	seed      int64
	output    string
	offcuts   bool
}

func newPackCommand(configPath *string) *cobra.Command {
	opts := &packOptions{}

	cmd := &cobra.Command{
		Use:   "pack <parts-file>",
		Short: "Pack a part list onto stock sheets and print the layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			applyPackDefaults(cmd, opts, cfg)

			parts, err := loadParts(args[0])
			if err != nil {
				return err
			}

			stocks, err := parseStock(opts.sheet, opts.sheetQty, opts.kerf)
			if err != nil {
				return err
			}

			algo := model.Algorithm(opts.algorithm)
			result, err := engine.Pack(parts, stocks, engine.Options{
				Algorithm:  algo,
				TimeBudget: opts.budget,
				Seed:       opts.seed,
			})
			if err != nil {
				return err
			}

			if len(result.Unplaced) > 0 {
				log.Printf("warning: %d part(s) could not be placed", len(result.Unplaced))
			}

			if opts.offcuts {
				out := struct {
					Layout  model.LayoutResult `json:"layout"`
					Offcuts []model.Offcut     `json:"offcuts"`
				}{result, model.DetectAllOffcuts(result)}
				return writeJSON(opts.output, out)
			}
			return writeJSON(opts.output, result)
		},
	}

	cmd.Flags().StringVar(&opts.sheet, "sheet", "2440x1220", "stock sheet size as LENGTHxWIDTH in mm")
	cmd.Flags().IntVar(&opts.sheetQty, "sheet-qty", 100, "number of stock sheets available")
	cmd.Flags().Float64Var(&opts.kerf, "kerf", 0, "saw kerf in mm (default from config)")
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "packing algorithm: strip, guillotine, or deep (default from config)")
	cmd.Flags().DurationVar(&opts.budget, "budget", 0, "time budget for the deep algorithm (default from config)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "shuffle seed for the deep algorithm (default from config)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.offcuts, "offcuts", false, "include reusable offcuts in the output")

	return cmd
}

// applyPackDefaults fills unset flags from the persisted config.
func applyPackDefaults(cmd *cobra.Command, opts *packOptions, cfg config.Config) {
	if !cmd.Flags().Changed("kerf") {
		opts.kerf = cfg.Kerf
	}
	if !cmd.Flags().Changed("algorithm") {
		opts.algorithm = string(cfg.Algorithm)
	}
	if !cmd.Flags().Changed("budget") {
		opts.budget = cfg.TimeBudget
	}
	if !cmd.Flags().Changed("seed") {
		opts.seed = cfg.Seed
	}
}

// loadParts reads a part list, dispatching on the file extension.
func loadParts(path string) ([]model.PartSpec, error) {
	var result importer.Result
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path)
	default:
		return nil, fmt.Errorf("unsupported part list format %q (want .csv, .xlsx, or .dxf)", filepath.Ext(path))
	}

	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			log.Printf("error: %s", e)
		}
		return nil, fmt.Errorf("%s: %d row(s) failed to import", path, len(result.Errors))
	}
	if len(result.Parts) == 0 {
		return nil, fmt.Errorf("%s: no parts found", path)
	}
	return result.Parts, nil
}

// parseStock builds a stock sheet spec from a "LENGTHxWIDTH" size string.
func parseStock(size string, qty int, kerf float64) ([]model.StockSheetSpec, error) {
	fields := strings.SplitN(strings.ToLower(size), "x", 2)
	if len(fields) != 2 {
		return nil, fmt.Errorf("invalid sheet size %q (want LENGTHxWIDTH, e.g. 2440x1220)", size)
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet length %q", fields[0])
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid sheet width %q", fields[1])
	}

	label := fmt.Sprintf("%gx%g", length, width)
	return []model.StockSheetSpec{model.NewStockSheetSpec(label, length, width, qty, kerf)}, nil
}

// writeJSON marshals v with indentation to the given path, or stdout if empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
