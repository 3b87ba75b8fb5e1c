package montecarlo

import (
	"sort"

	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// BatchStats is the distribution summary of a batch of independent trials.
type BatchStats struct {
	Trials            int     `json:"trials"`
	MeanFinalEquity   float64 `json:"mean_final_equity"`
	MedianFinalEquity float64 `json:"median_final_equity"`
	P5FinalEquity     float64 `json:"p5_final_equity"`
	P95FinalEquity    float64 `json:"p95_final_equity"`
	BestFinalEquity   float64 `json:"best_final_equity"`
	WorstFinalEquity  float64 `json:"worst_final_equity"`
	ProbProfit        float64 `json:"prob_profit"` // percentage of trials ending above initial equity
	MeanWinRate       float64 `json:"mean_win_rate"`
	MeanMaxDrawdown   float64 `json:"mean_max_drawdown"`
	WorstMaxDrawdown  float64 `json:"worst_max_drawdown"`
}

// Aggregate folds trial summaries into batch statistics. An empty input
// returns zero values.
func Aggregate(summaries []*simulator.SimulationSummary) *BatchStats {
	stats := &BatchStats{Trials: len(summaries)}
	if len(summaries) == 0 {
		return stats
	}

	finals := make([]float64, 0, len(summaries))
	profitable := 0
	for _, s := range summaries {
		finals = append(finals, s.FinalEquity)
		if s.FinalEquity > s.InitialEquity {
			profitable++
		}
		stats.MeanFinalEquity += s.FinalEquity
		stats.MeanWinRate += s.RealizedWinRate
		stats.MeanMaxDrawdown += s.MaxDrawdown.Percent
		if s.MaxDrawdown.Percent > stats.WorstMaxDrawdown {
			stats.WorstMaxDrawdown = s.MaxDrawdown.Percent
		}
	}

	n := float64(len(summaries))
	stats.MeanFinalEquity /= n
	stats.MeanWinRate /= n
	stats.MeanMaxDrawdown /= n
	stats.ProbProfit = float64(profitable) / n * 100

	sort.Float64s(finals)
	stats.WorstFinalEquity = finals[0]
	stats.BestFinalEquity = finals[len(finals)-1]
	stats.MedianFinalEquity = percentile(finals, 50)
	stats.P5FinalEquity = percentile(finals, 5)
	stats.P95FinalEquity = percentile(finals, 95)

	return stats
}

// percentile reads the p-th percentile from an ascending slice using
// nearest-rank selection.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p / 100 * float64(len(sorted)-1))
	return sorted[idx]
}
