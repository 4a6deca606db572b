package engine

import (
	"math"
	"sort"

	"github.com/MaierG74/cutlist/internal/model"
)

// splitRule decides which axis the guillotine cut takes when splitting
// the L-shaped leftover of a free rectangle into two.
type splitRule int

const (
	// splitMinSmaller minimizes the area of the smaller resulting rect,
	// preserving one large contiguous offcut for future large parts.
	splitMinSmaller splitRule = iota
	// splitMaxSmaller makes the two leftovers as even-sized as possible.
	splitMaxSmaller
	// splitShorterLeftoverAxis cuts along the shorter leftover edge.
	splitShorterLeftoverAxis
	// splitLongerLeftoverAxis cuts along the longer leftover edge.
	splitLongerLeftoverAxis
)

// unitOrder selects the sort key for the unit processing order.
type unitOrder int

const (
	orderAreaDesc unitOrder = iota
	orderWidthDesc
	orderLengthDesc
	orderPerimeterDesc
	orderLongEdgeDesc
	orderShuffled // uses the permutation carried on the config
)

// guillotineConfig is one heuristic configuration: a unit ordering plus
// a split-axis rule. The deep optimizer sweeps over these.
type guillotineConfig struct {
	order unitOrder
	split splitRule
	perm  []int // only for orderShuffled
}

func defaultGuillotineConfig() guillotineConfig {
	return guillotineConfig{order: orderAreaDesc, split: splitMinSmaller}
}

// orderUnits returns a fresh slice of units in the configured order.
func orderUnits(units []model.PartUnit, cfg guillotineConfig) []model.PartUnit {
	out := make([]model.PartUnit, len(units))
	if cfg.order == orderShuffled && len(cfg.perm) == len(units) {
		for i, p := range cfg.perm {
			out[i] = units[p]
		}
		return out
	}
	copy(out, units)
	key := func(u model.PartUnit) float64 {
		switch cfg.order {
		case orderWidthDesc:
			return u.Width
		case orderLengthDesc:
			return u.Length
		case orderPerimeterDesc:
			return 2 * (u.Length + u.Width)
		case orderLongEdgeDesc:
			return math.Max(u.Length, u.Width)
		default:
			return u.Area()
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki > kj
		}
		return out[i].Area() > out[j].Area()
	})
	return out
}

// guillotinePacker keeps one free-rectangle list per open sheet and
// places each unit by a best-fit rule over every free rect, permitted
// orientation, and open sheet.
type guillotinePacker struct {
	cfg guillotineConfig
}

type guilloSheet struct {
	inst model.SheetInstance
	free []rect
}

// candidate identifies a scored placement choice.
type candidate struct {
	sheet    int
	rectIdx  int
	rot      bool
	area     float64 // leftover area, primary score
	longEdge float64 // longer leftover edge, tie-break
}

func (p *guillotinePacker) Pack(units []model.PartUnit, stocks []model.StockSheetSpec) model.LayoutResult {
	ordered := orderUnits(units, p.cfg)
	pool := newStockPool(stocks)
	var sheets []*guilloSheet
	var cuts []model.CutLine
	var unplaced []string

	for _, u := range ordered {
		best, ok := findBest(sheets, u)
		if !ok {
			inst, drawn := pool.draw(u)
			if !drawn {
				unplaced = append(unplaced, u.ID)
				continue
			}
			sheets = append(sheets, &guilloSheet{
				inst: inst,
				free: []rect{{0, 0, inst.Length, inst.Width}},
			})
			best, ok = findBest(sheets[len(sheets)-1:], u)
			if !ok {
				// draw() already checked the blank sheet admits the unit.
				unplaced = append(unplaced, u.ID)
				continue
			}
			best.sheet = len(sheets) - 1
		}
		sh := sheets[best.sheet]
		cuts = append(cuts, insert(sh, best.rectIdx, u, best.rot, p.cfg.split)...)
	}

	var insts []model.SheetInstance
	for _, sh := range sheets {
		insts = append(insts, sh.inst)
	}
	return assembleResult(string(model.AlgorithmGuillotine), insts, cuts, unplaced)
}

// findBest scores every (free rect, orientation) pair across the given
// sheets with best-area-fit: minimize leftover area, ties broken by the
// smaller "longer leftover edge".
func findBest(sheets []*guilloSheet, u model.PartUnit) (candidate, bool) {
	normal, rotated := allowedOrientations(u.Grain)
	var rots []bool
	if normal {
		rots = append(rots, false)
	}
	if rotated && (u.Length != u.Width || !normal) {
		rots = append(rots, true)
	}

	best := candidate{area: -1}
	found := false
	for si, sh := range sheets {
		kerf := sh.inst.Kerf
		for ri, r := range sh.free {
			for _, rot := range rots {
				w, h := orientedDims(u, rot)
				if !fitsWithKerf(r, w, h, sh.inst.Length, sh.inst.Width, kerf) {
					continue
				}
				areaFit := r.area() - w*h
				longEdge := math.Max(r.w-w, r.h-h)
				if !found || areaFit < best.area-epsilon ||
					(math.Abs(areaFit-best.area) <= epsilon && longEdge < best.longEdge-epsilon) {
					best = candidate{sheet: si, rectIdx: ri, rot: rot, area: areaFit, longEdge: longEdge}
					found = true
				}
			}
		}
	}
	return best, found
}

// chooseSplitHorizontal applies the split rule to one placement's
// leftover geometry. Horizontal means the first cut runs the full width
// of the free rect.
func chooseSplitHorizontal(rule splitRule, free rect, consumedW, consumedH, leftW, leftH float64) bool {
	switch rule {
	case splitShorterLeftoverAxis:
		return leftW <= leftH
	case splitLongerLeftoverAxis:
		return leftW > leftH
	case splitMaxSmaller:
		return math.Min(free.w*leftH, leftW*consumedH) >= math.Min(leftW*free.h, consumedW*leftH)
	default: // splitMinSmaller
		return math.Min(free.w*leftH, leftW*consumedH) <= math.Min(leftW*free.h, consumedW*leftH)
	}
}

// insert places the unit at the free rect's origin, splits the leftover
// with a guillotine cut, prunes the free list, and returns the saw cuts
// this placement requires.
func insert(sh *guilloSheet, rectIdx int, u model.PartUnit, rot bool, rule splitRule) []model.CutLine {
	r := sh.free[rectIdx]
	kerf := sh.inst.Kerf
	w, h := orientedDims(u, rot)
	consumedW := consumedSpan(r.w, w, kerf)
	consumedH := consumedSpan(r.h, h, kerf)
	leftW := r.w - consumedW
	leftH := r.h - consumedH

	horizontal := chooseSplitHorizontal(rule, r, consumedW, consumedH, leftW, leftH)
	a, b := splitFreeRect(r, consumedW, consumedH, horizontal)

	free := make([]rect, 0, len(sh.free)+1)
	free = append(free, sh.free[:rectIdx]...)
	free = append(free, sh.free[rectIdx+1:]...)
	if a.w > epsilon && a.h > epsilon {
		free = append(free, a)
	}
	if b.w > epsilon && b.h > epsilon {
		free = append(free, b)
	}
	sh.free = pruneContained(free)

	sh.inst.Placements = append(sh.inst.Placements, model.Placement{
		PartID:  u.ID,
		Label:   u.Label,
		X:       r.x,
		Y:       r.y,
		W:       w,
		H:       h,
		Rotated: rot,
	})

	// A cut is only needed on a side with material beyond the placed
	// edge. The first cut spans the whole free rect; the second spans
	// the band the first cut separated.
	var cuts []model.CutLine
	cutRight := r.w-w > epsilon
	cutBelow := r.h-h > epsilon
	if horizontal {
		if cutBelow {
			cuts = append(cuts, model.CutLine{
				SheetID: sh.inst.SheetID, Dir: model.CutHorizontal,
				Pos: r.y + h, SpanStart: r.x, SpanEnd: r.right(),
			})
		}
		if cutRight {
			cuts = append(cuts, model.CutLine{
				SheetID: sh.inst.SheetID, Dir: model.CutVertical,
				Pos: r.x + w, SpanStart: r.y, SpanEnd: r.y + h,
			})
		}
	} else {
		if cutRight {
			cuts = append(cuts, model.CutLine{
				SheetID: sh.inst.SheetID, Dir: model.CutVertical,
				Pos: r.x + w, SpanStart: r.y, SpanEnd: r.bottom(),
			})
		}
		if cutBelow {
			cuts = append(cuts, model.CutLine{
				SheetID: sh.inst.SheetID, Dir: model.CutHorizontal,
				Pos: r.y + h, SpanStart: r.x, SpanEnd: r.x + w,
			})
		}
	}
	return cuts
}
