// Package engine implements the sheet-nesting optimizer: three packing
// algorithms (strip, guillotine, deep) that place rectangular part
// units onto stock sheets under saw-kerf and grain constraints. The
// engine is a pure computation: it holds no state across calls, does
// no I/O, and reports unplaceable units as data rather than errors.
package engine

import (
	"fmt"
	"time"

	"github.com/MaierG74/cutlist/internal/model"
)

// Options configures a single engine invocation.
type Options struct {
	Algorithm  model.Algorithm
	TimeBudget time.Duration    // deep only; 0 returns the guillotine baseline
	Seed       int64            // deep shuffle seed; 0 uses the default
	Now        func() time.Time // injectable clock for deterministic tests
}

// Packer is the shared contract of all packing algorithms.
type Packer interface {
	Pack(units []model.PartUnit, stocks []model.StockSheetSpec) model.LayoutResult
}

// Pack validates the input, expands part quantities into units, and
// runs the selected algorithm. The default algorithm is guillotine.
func Pack(parts []model.PartSpec, stocks []model.StockSheetSpec, opts Options) (model.LayoutResult, error) {
	if err := validateInput(parts, stocks); err != nil {
		return model.LayoutResult{}, err
	}
	if opts.Algorithm == "" {
		opts.Algorithm = model.AlgorithmGuillotine
	}
	if !opts.Algorithm.Valid() {
		return model.LayoutResult{}, fmt.Errorf("algorithm: unknown value %q", opts.Algorithm)
	}
	if opts.TimeBudget < 0 {
		return model.LayoutResult{}, fmt.Errorf("time_budget_ms: must be >= 0, got %v", opts.TimeBudget)
	}

	units := model.ExpandUnits(parts)

	var p Packer
	switch opts.Algorithm {
	case model.AlgorithmStrip:
		p = stripPacker{}
	case model.AlgorithmGuillotine:
		p = &guillotinePacker{cfg: defaultGuillotineConfig()}
	case model.AlgorithmDeep:
		p = &deepPacker{budget: opts.TimeBudget, seed: opts.Seed, now: opts.Now}
	}
	return p.Pack(units, stocks), nil
}

// validateInput rejects malformed input before any placement attempt,
// naming the offending field. Oversize parts and exhausted stock are
// not input errors; they surface on the result's unplaced list.
func validateInput(parts []model.PartSpec, stocks []model.StockSheetSpec) error {
	if len(parts) == 0 {
		return fmt.Errorf("parts: list is empty")
	}
	if len(stocks) == 0 {
		return fmt.Errorf("stocks: list is empty")
	}
	for _, p := range parts {
		if p.Length <= 0 {
			return fmt.Errorf("part %q: length_mm must be > 0, got %v", p.ID, p.Length)
		}
		if p.Width <= 0 {
			return fmt.Errorf("part %q: width_mm must be > 0, got %v", p.ID, p.Width)
		}
		if p.Quantity < 1 {
			return fmt.Errorf("part %q: qty must be >= 1, got %d", p.ID, p.Quantity)
		}
		if p.Grain != "" && !p.Grain.Valid() {
			return fmt.Errorf("part %q: grain must be one of length, width, any; got %q", p.ID, p.Grain)
		}
	}
	for _, s := range stocks {
		if s.Length <= 0 {
			return fmt.Errorf("stock %q: length_mm must be > 0, got %v", s.ID, s.Length)
		}
		if s.Width <= 0 {
			return fmt.Errorf("stock %q: width_mm must be > 0, got %v", s.ID, s.Width)
		}
		if s.Quantity < 1 {
			return fmt.Errorf("stock %q: qty must be >= 1, got %d", s.ID, s.Quantity)
		}
		if s.Kerf < 0 {
			return fmt.Errorf("stock %q: kerf_mm must be >= 0, got %v", s.ID, s.Kerf)
		}
	}
	return nil
}
