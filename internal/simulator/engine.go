package simulator

import (
	"math/rand"
	"time"
)

// RandSource yields independent uniform draws in [0,1). Injectable so tests
// can seed deterministically.
type RandSource func() float64

// DefaultRand returns a time-seeded random source.
func DefaultRand() RandSource {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return rng.Float64
}

// SeededRand returns a deterministic random source for the given seed.
func SeededRand(seed int64) RandSource {
	rng := rand.New(rand.NewSource(seed))
	return rng.Float64
}

// Engine runs one simulation: calendar expansion, per-day Bernoulli trials,
// bucket accumulation and summary derivation. One run is a single synchronous
// computation from parameters to summary.
type Engine struct {
	params SimulationParams
	rand   RandSource
}

// New creates an engine for the given parameters. A nil source falls back to
// time-seeded randomness.
func New(params SimulationParams, src RandSource) *Engine {
	if src == nil {
		src = DefaultRand()
	}
	return &Engine{params: params, rand: src}
}

// Run executes the full pipeline and returns the finished summary. A range
// with zero trading days returns an empty curve and safe default rates rather
// than NaN results.
func (e *Engine) Run() *SimulationSummary {
	p := e.params
	days := TradingDays(p.StartDate, p.EndDate)

	tr := newTrackers(p.StartingEquity)
	monthly := newBucketMap()
	weekly := newBucketMap()
	var curve []EquityPoint

	if len(days) > 0 {
		// Seed point anchored at the first trading day's label.
		curve = make([]EquityPoint, 0, len(days)+1)
		curve = append(curve, EquityPoint{
			Label:    days[0].Label,
			Equity:   p.StartingEquity,
			MonthKey: days[0].MonthKey,
			WeekKey:  days[0].WeekKey,
		})
	}

	reward := p.RiskPerTrade * p.RiskReward
	winProb := p.WinRate / 100

	for _, day := range days {
		mb := monthly.get(day.MonthKey)
		wb := weekly.get(day.WeekKey)

		for i := 0; i < p.TradesPerDay; i++ {
			if e.rand() < winProb {
				tr.equity += reward
				tr.recordWin(day.Label)
				mb.Wins++
				mb.Profit += reward
				wb.Wins++
				wb.Profit += reward
			} else {
				tr.equity -= p.RiskPerTrade
				tr.recordLoss(day.Label)
				mb.Losses++
				mb.Profit -= p.RiskPerTrade
				wb.Losses++
				wb.Profit -= p.RiskPerTrade
			}
			mb.Trades++
			wb.Trades++
		}

		tr.closeDay(day.Label)
		curve = append(curve, EquityPoint{
			Label:    day.Label,
			Equity:   tr.equity,
			MonthKey: day.MonthKey,
			WeekKey:  day.WeekKey,
		})
	}

	return buildSummary(p, len(days), tr, curve, monthly, weekly)
}

// bucketMap lazily creates stat buckets the first time a day maps to an
// unseen key, and remembers discovery order for display consistency.
type bucketMap struct {
	order   []string
	buckets map[string]*BucketStats
}

func newBucketMap() *bucketMap {
	return &bucketMap{buckets: make(map[string]*BucketStats)}
}

func (m *bucketMap) get(key string) *BucketStats {
	if b, ok := m.buckets[key]; ok {
		return b
	}
	b := &BucketStats{Key: key}
	m.buckets[key] = b
	m.order = append(m.order, key)
	return b
}

// finalize projects the accumulated buckets into an ordered list with derived
// win rates. It does not mutate the accumulation.
func (m *bucketMap) finalize() []BucketStats {
	out := make([]BucketStats, 0, len(m.order))
	for _, key := range m.order {
		b := *m.buckets[key]
		if decided := b.Wins + b.Losses; decided > 0 {
			b.WinRate = float64(b.Wins) / float64(decided) * 100
		}
		out = append(out, b)
	}
	return out
}
