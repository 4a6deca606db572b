package engine

import (
	"sort"

	"github.com/MaierG74/cutlist/internal/model"
)

// stripPacker is the greedy band heuristic: units are packed
// left-to-right into horizontal strips whose height is fixed by the
// first (tallest) unit assigned to them. Single pass, no backtracking;
// it is the speed baseline the deep optimizer is bounded against.
type stripPacker struct{}

// stripBand is one horizontal band on a sheet. The last band of a
// sheet is the open strip; earlier bands are committed.
type stripBand struct {
	y, h   float64
	pieces []int // indexes into the sheet's Placements
}

type stripSheet struct {
	inst  model.SheetInstance
	bands []stripBand
	x     float64 // cursor inside the open strip
}

// orientationOrder lists the grain-permitted orientations for a unit,
// preferred one first.
func orientationOrder(u model.PartUnit) []bool {
	normal, rotated := allowedOrientations(u.Grain)
	pref := preferredOrientation(u)
	order := []bool{pref}
	if normal && rotated && u.Length != u.Width {
		order = append(order, !pref)
	}
	return order
}

func (stripPacker) Pack(units []model.PartUnit, stocks []model.StockSheetSpec) model.LayoutResult {
	// Tall pieces anchor strips: sort by preferred-orientation height
	// descending, ties by width descending.
	ordered := make([]model.PartUnit, len(units))
	copy(ordered, units)
	sort.SliceStable(ordered, func(i, j int) bool {
		wi, hi := orientedDims(ordered[i], preferredOrientation(ordered[i]))
		wj, hj := orientedDims(ordered[j], preferredOrientation(ordered[j]))
		if hi != hj {
			return hi > hj
		}
		return wi > wj
	})

	pool := newStockPool(stocks)
	var sheets []*stripSheet
	var unplaced []string

	for _, u := range ordered {
		if placeUnitOnStrips(sheets, u) {
			continue
		}
		inst, ok := pool.draw(u)
		if !ok {
			unplaced = append(unplaced, u.ID)
			continue
		}
		sh := &stripSheet{inst: inst}
		sheets = append(sheets, sh)
		// draw() guarantees the unit fits a blank sheet of this size.
		sh.openStrip(u)
	}

	var insts []model.SheetInstance
	var cuts []model.CutLine
	for _, sh := range sheets {
		insts = append(insts, sh.inst)
		cuts = append(cuts, sh.cutLines()...)
	}
	return assembleResult(string(model.AlgorithmStrip), insts, cuts, unplaced)
}

// placeUnitOnStrips tries every open sheet's current strip first, then
// tries opening a fresh strip on any sheet with vertical room left.
func placeUnitOnStrips(sheets []*stripSheet, u model.PartUnit) bool {
	for _, sh := range sheets {
		if sh.placeInOpenStrip(u) {
			return true
		}
	}
	for _, sh := range sheets {
		if sh.openStrip(u) {
			return true
		}
	}
	return false
}

// placeInOpenStrip places the unit at the strip cursor if a permitted
// orientation fits the strip height and the remaining run of the sheet.
func (sh *stripSheet) placeInOpenStrip(u model.PartUnit) bool {
	if len(sh.bands) == 0 {
		return false
	}
	band := &sh.bands[len(sh.bands)-1]
	for _, rot := range orientationOrder(u) {
		w, h := orientedDims(u, rot)
		if h <= band.h+epsilon && sh.x+w <= sh.inst.Length+epsilon {
			sh.put(u, sh.x, band.y, w, h, rot, band)
			return true
		}
	}
	return false
}

// openStrip commits the current strip and opens a new one sized to the
// unit, provided the sheet has vertical room for it.
func (sh *stripSheet) openStrip(u model.PartUnit) bool {
	nextY := 0.0
	if n := len(sh.bands); n > 0 {
		last := sh.bands[n-1]
		nextY = last.y + last.h + sh.inst.Kerf
	}
	for _, rot := range orientationOrder(u) {
		w, h := orientedDims(u, rot)
		if w <= sh.inst.Length+epsilon && nextY+h <= sh.inst.Width+epsilon {
			sh.bands = append(sh.bands, stripBand{y: nextY, h: h})
			band := &sh.bands[len(sh.bands)-1]
			sh.x = 0
			sh.put(u, 0, nextY, w, h, rot, band)
			return true
		}
	}
	return false
}

func (sh *stripSheet) put(u model.PartUnit, x, y, w, h float64, rot bool, band *stripBand) {
	sh.inst.Placements = append(sh.inst.Placements, model.Placement{
		PartID:  u.ID,
		Label:   u.Label,
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		Rotated: rot,
	})
	band.pieces = append(band.pieces, len(sh.inst.Placements)-1)
	sh.x = x + w + sh.inst.Kerf
}

// cutLines synthesizes the saw program from strip boundaries: one
// horizontal rip per strip, one vertical crosscut after each piece,
// and a trim cut on pieces shorter than their strip.
func (sh *stripSheet) cutLines() []model.CutLine {
	var cuts []model.CutLine
	for _, band := range sh.bands {
		if band.y+band.h < sh.inst.Width-epsilon {
			cuts = append(cuts, model.CutLine{
				SheetID:   sh.inst.SheetID,
				Dir:       model.CutHorizontal,
				Pos:       band.y + band.h,
				SpanStart: 0,
				SpanEnd:   sh.inst.Length,
			})
		}
		for _, idx := range band.pieces {
			p := sh.inst.Placements[idx]
			if p.X+p.W < sh.inst.Length-epsilon {
				cuts = append(cuts, model.CutLine{
					SheetID:   sh.inst.SheetID,
					Dir:       model.CutVertical,
					Pos:       p.X + p.W,
					SpanStart: band.y,
					SpanEnd:   band.y + band.h,
				})
			}
			if p.H < band.h-epsilon {
				cuts = append(cuts, model.CutLine{
					SheetID:   sh.inst.SheetID,
					Dir:       model.CutHorizontal,
					Pos:       p.Y + p.H,
					SpanStart: p.X,
					SpanEnd:   p.X + p.W,
				})
			}
		}
	}
	return cuts
}
