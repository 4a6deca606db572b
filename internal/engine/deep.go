package engine

import (
	"math/rand"
	"time"

	"github.com/MaierG74/cutlist/internal/model"
)

// defaultDeepSeed seeds the shuffle candidates so repeated runs on the
// same input explore the same orderings.
const defaultDeepSeed = 42

// maxShuffleCandidates bounds the random tail of the configuration
// sweep; past this the search has no further configurations and exits
// even with budget remaining.
const maxShuffleCandidates = 128

// deepPacker is the anytime optimizer: it records the plain guillotine
// result as its first incumbent, then spends the time budget running
// the guillotine core under alternate configurations, keeping the best
// (unplaced, sheets used, waste) score seen. Stopping at any checkpoint
// yields a valid layout no worse than the baseline.
type deepPacker struct {
	budget time.Duration
	seed   int64
	now    func() time.Time // injectable clock; nil means time.Now
}

func (p *deepPacker) Pack(units []model.PartUnit, stocks []model.StockSheetSpec) model.LayoutResult {
	base := &guillotinePacker{cfg: defaultGuillotineConfig()}
	incumbent := base.Pack(units, stocks)
	incumbent.StrategyUsed = string(model.AlgorithmDeep)
	if p.budget <= 0 {
		return incumbent
	}

	now := p.now
	if now == nil {
		now = time.Now
	}
	deadline := now().Add(p.budget)

	next := newConfigSweep(len(units), p.seed)
	for now().Before(deadline) {
		cfg, ok := next()
		if !ok {
			break
		}
		cand := (&guillotinePacker{cfg: cfg}).Pack(units, stocks)
		if betterLayout(cand, incumbent) {
			cand.StrategyUsed = string(model.AlgorithmDeep)
			incumbent = cand
		}
	}
	return incumbent
}

// betterLayout is the incumbent-replacement rule: a candidate that
// strands more units never wins; otherwise compare (sheets used,
// waste area) lexicographically, strictly.
func betterLayout(cand, inc model.LayoutResult) bool {
	if len(cand.Unplaced) != len(inc.Unplaced) {
		return len(cand.Unplaced) < len(inc.Unplaced)
	}
	if cand.SheetsUsed() != inc.SheetsUsed() {
		return cand.SheetsUsed() < inc.SheetsUsed()
	}
	return cand.Stats.WasteArea < inc.Stats.WasteArea-epsilon
}

// newConfigSweep returns a generator over candidate configurations:
// first the deterministic grid of alternate orderings and split rules,
// then seeded random shuffles. The baseline configuration is skipped.
func newConfigSweep(n int, seed int64) func() (guillotineConfig, bool) {
	orders := []unitOrder{orderAreaDesc, orderWidthDesc, orderLengthDesc, orderPerimeterDesc, orderLongEdgeDesc}
	splits := []splitRule{splitMinSmaller, splitShorterLeftoverAxis, splitLongerLeftoverAxis, splitMaxSmaller}
	if seed == 0 {
		seed = defaultDeepSeed
	}
	rng := rand.New(rand.NewSource(seed))

	oi, si := 0, 0
	shuffles := 0
	return func() (guillotineConfig, bool) {
		for oi < len(orders) {
			cfg := guillotineConfig{order: orders[oi], split: splits[si]}
			si++
			if si == len(splits) {
				si = 0
				oi++
			}
			if cfg.order == orderAreaDesc && cfg.split == splitMinSmaller {
				continue // baseline, already the incumbent
			}
			return cfg, true
		}
		if shuffles < maxShuffleCandidates && n > 1 {
			shuffles++
			return guillotineConfig{
				order: orderShuffled,
				split: splits[shuffles%len(splits)],
				perm:  rng.Perm(n),
			}, true
		}
		return guillotineConfig{}, false
	}
}
