package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaierG74/cutlist/internal/model"
)

// fakeClock hands out times advancing by a fixed step per call, so
// budget expiry happens after a known number of checks.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestDeep_ZeroBudgetReturnsGuillotineBaseline(t *testing.T) {
	parts, stocks := scenarioB(t)

	base, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmGuillotine})
	require.NoError(t, err)
	deep, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmDeep, TimeBudget: 0})
	require.NoError(t, err)

	assert.Equal(t, string(model.AlgorithmDeep), deep.StrategyUsed)
	assert.Equal(t, base.Stats, deep.Stats)
	assert.Equal(t, base.Sheets, deep.Sheets)
}

func TestDeep_NeverWorseThanBaseline(t *testing.T) {
	parts, stocks := scenarioB(t)

	base, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmGuillotine})
	require.NoError(t, err)

	// A frozen clock never reaches the deadline, so the sweep runs to
	// exhaustion and the packer still terminates.
	frozen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deep, err := Pack(parts, stocks, Options{
		Algorithm:  model.AlgorithmDeep,
		TimeBudget: time.Second,
		Now:        func() time.Time { return frozen },
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(deep.Unplaced), len(base.Unplaced))
	assert.LessOrEqual(t, deep.SheetsUsed(), base.SheetsUsed())
	if deep.SheetsUsed() == base.SheetsUsed() {
		assert.LessOrEqual(t, deep.Stats.WasteArea, base.Stats.WasteArea+epsilon)
	}
	assertLayoutSane(t, deep)
}

func TestDeep_BudgetExpiryStopsSearch(t *testing.T) {
	parts, stocks := scenarioB(t)

	// Each clock check advances 100ms against a 250ms budget: the sweep
	// gets two candidate evaluations before the deadline passes.
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: 100 * time.Millisecond}
	result, err := Pack(parts, stocks, Options{
		Algorithm:  model.AlgorithmDeep,
		TimeBudget: 250 * time.Millisecond,
		Now:        clock.now,
	})
	require.NoError(t, err)

	assert.Equal(t, string(model.AlgorithmDeep), result.StrategyUsed)
	assert.Empty(t, result.Unplaced)
	assertLayoutSane(t, result)

	// One call computed the deadline, then one per loop check until the
	// deadline was crossed.
	elapsed := clock.t.Sub(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 400*time.Millisecond, elapsed)
}

func TestDeep_SeedIsDeterministic(t *testing.T) {
	parts, stocks := scenarioB(t)
	frozen := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	run := func(seed int64) model.LayoutResult {
		result, err := Pack(parts, stocks, Options{
			Algorithm:  model.AlgorithmDeep,
			TimeBudget: time.Second,
			Seed:       seed,
			Now:        func() time.Time { return frozen },
		})
		require.NoError(t, err)
		return result
	}

	first := run(7)
	second := run(7)
	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.Sheets, second.Sheets)
}

func TestBetterLayout_UnplacedGuard(t *testing.T) {
	// A candidate stranding more units never replaces the incumbent,
	// even with fewer sheets and less waste.
	inc := model.LayoutResult{
		Sheets:   []model.SheetInstance{{SheetID: "a"}, {SheetID: "b"}},
		Stats:    model.LayoutStats{WasteArea: 500},
		Unplaced: []string{},
	}
	cand := model.LayoutResult{
		Sheets:   []model.SheetInstance{{SheetID: "a"}},
		Stats:    model.LayoutStats{WasteArea: 100},
		Unplaced: []string{"p-1"},
	}
	assert.False(t, betterLayout(cand, inc))
	assert.True(t, betterLayout(inc, cand))

	// With equal unplaced counts, fewer sheets wins, then less waste.
	cand.Unplaced = nil
	assert.True(t, betterLayout(cand, inc))

	sameSheets := inc
	sameSheets.Stats.WasteArea = 400
	assert.True(t, betterLayout(sameSheets, inc))
	assert.False(t, betterLayout(inc, sameSheets))
}

func TestConfigSweep_CoversGridThenShuffles(t *testing.T) {
	next := newConfigSweep(5, 0)

	grid := 0
	shuffles := 0
	for {
		cfg, ok := next()
		if !ok {
			break
		}
		if cfg.order == orderShuffled {
			shuffles++
			assert.Len(t, cfg.perm, 5)
		} else {
			grid++
			// The baseline configuration is the incumbent already.
			assert.False(t, cfg.order == orderAreaDesc && cfg.split == splitMinSmaller)
		}
	}
	assert.Equal(t, 19, grid, "5 orderings x 4 splits minus the baseline")
	assert.Equal(t, maxShuffleCandidates, shuffles)
}
