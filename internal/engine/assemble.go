package engine

import "github.com/MaierG74/cutlist/internal/model"

// assembleResult builds the LayoutResult every packer returns: the
// consumed sheets with their canonical largest-offcut figure, the
// aggregate material accounting, and the unplaced unit ids. Waste is
// counted only over sheets that received at least one unit; unplaced
// units are data for the caller, never an error.
func assembleResult(strategy string, sheets []model.SheetInstance, cuts []model.CutLine, unplaced []string) model.LayoutResult {
	var used, waste float64
	kept := make([]model.SheetInstance, 0, len(sheets))
	for _, s := range sheets {
		if len(s.Placements) == 0 {
			continue
		}
		s.LargestOffcut = largestEmptyRect(s)
		used += s.UsedArea()
		waste += s.Area() - s.UsedArea()
		kept = append(kept, s)
	}

	var cutLen float64
	for _, c := range cuts {
		cutLen += c.Length()
	}
	if unplaced == nil {
		unplaced = []string{}
	}

	return model.LayoutResult{
		Sheets:       kept,
		CutLines:     cuts,
		StrategyUsed: strategy,
		Unplaced:     unplaced,
		Stats: model.LayoutStats{
			UsedArea:  used,
			WasteArea: waste,
			Cuts:      len(cuts),
			CutLength: cutLen,
		},
	}
}

// largestEmptyRect is the canonical largest-offcut statistic: the
// maximum-area axis-aligned empty rectangle on the sheet, derived from
// final placements alone so every algorithm reports the same figure
// for the same layout.
func largestEmptyRect(s model.SheetInstance) float64 {
	free := []rect{{0, 0, s.Length, s.Width}}
	for _, p := range s.Placements {
		free = carveRect(free, rect{p.X, p.Y, p.W, p.H})
	}
	var best float64
	for _, r := range free {
		if r.area() > best {
			best = r.area()
		}
	}
	return best
}
