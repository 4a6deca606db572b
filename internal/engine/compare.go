package engine

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/MaierG74/cutlist/internal/model"
)

// AlgorithmReport holds the result and computed statistics for one
// algorithm run, for side-by-side benchmarking.
type AlgorithmReport struct {
	Algorithm       model.Algorithm
	Result          model.LayoutResult
	SheetsUsed      int
	WasteArea       float64
	Cuts            int
	CutLength       float64
	Efficiency      float64 // overall material usage, percent
	MeanSheetEff    float64 // mean per-sheet efficiency, percent
	StdDevSheetEff  float64 // spread of per-sheet efficiency
	LargestOffcut   float64 // best single offcut across sheets, sq mm
	UnplacedCount   int
	Elapsed         time.Duration
}

// CompareAlgorithms runs every packing algorithm on the same input and
// returns reports in a fixed order (strip, guillotine, deep). This is
// the benchmark harness's core: identical inputs, per-algorithm stats.
func CompareAlgorithms(parts []model.PartSpec, stocks []model.StockSheetSpec, budget time.Duration) ([]AlgorithmReport, error) {
	algorithms := []model.Algorithm{
		model.AlgorithmStrip,
		model.AlgorithmGuillotine,
		model.AlgorithmDeep,
	}

	reports := make([]AlgorithmReport, 0, len(algorithms))
	for _, a := range algorithms {
		start := time.Now()
		res, err := Pack(parts, stocks, Options{Algorithm: a, TimeBudget: budget})
		if err != nil {
			return nil, err
		}
		elapsed := time.Since(start)

		effs := make([]float64, 0, len(res.Sheets))
		largest := 0.0
		for _, s := range res.Sheets {
			effs = append(effs, s.Efficiency())
			if s.LargestOffcut > largest {
				largest = s.LargestOffcut
			}
		}
		mean, sd := 0.0, 0.0
		if len(effs) > 0 {
			mean = stat.Mean(effs, nil)
		}
		if len(effs) > 1 {
			sd = stat.StdDev(effs, nil)
		}

		reports = append(reports, AlgorithmReport{
			Algorithm:      a,
			Result:         res,
			SheetsUsed:     res.SheetsUsed(),
			WasteArea:      res.Stats.WasteArea,
			Cuts:           res.Stats.Cuts,
			CutLength:      res.Stats.CutLength,
			Efficiency:     res.TotalEfficiency(),
			MeanSheetEff:   mean,
			StdDevSheetEff: sd,
			LargestOffcut:  largest,
			UnplacedCount:  len(res.Unplaced),
			Elapsed:        elapsed,
		})
	}
	return reports, nil
}
