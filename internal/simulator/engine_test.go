package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() SimulationParams {
	return SimulationParams{
		WinRate:        50,
		TradesPerDay:   1,
		RiskPerTrade:   100,
		RiskReward:     2,
		StartingEquity: 1000,
		StartDate:      date(2025, time.January, 1),
		EndDate:        date(2025, time.January, 10),
	}
}

// TestRun_AllWins tests a certain-win configuration over a known range
func TestRun_AllWins(t *testing.T) {
	p := testParams()
	p.WinRate = 100

	s := New(p, SeededRand(1)).Run()

	// 8 weekdays, each winning 200
	assert.Equal(t, 2600.0, s.FinalEquity)
	assert.Equal(t, 1600.0, s.TotalProfit)
	assert.Equal(t, 8, s.TotalTrades)
	assert.Equal(t, 100.0, s.RealizedWinRate)
	assert.Equal(t, 8, s.MaxWinStreak.Length)
	assert.Equal(t, "Jan 1 2025 to Jan 10 2025", s.MaxWinStreak.Period)
	assert.Equal(t, 0, s.MaxLossStreak.Length)
	assert.Equal(t, "N/A to N/A", s.MaxLossStreak.Period)
	assert.Equal(t, 0.0, s.MaxDrawdown.Percent)
	assert.Len(t, s.EquityCurve, 9)

	// avg R: 1600 / (100 * 8) = 2 per day, *5 per week
	assert.Equal(t, 2.0, s.AvgRPerDay)
	assert.Equal(t, 10.0, s.AvgRPerWeek)
	assert.Equal(t, 1.0, s.AvgTradesPerDay)
}

// TestRun_AllLosses tests a certain-loss configuration over a known range
func TestRun_AllLosses(t *testing.T) {
	p := testParams()
	p.WinRate = 0

	s := New(p, SeededRand(1)).Run()

	assert.Equal(t, 200.0, s.FinalEquity)
	assert.Equal(t, 0, s.MaxWinStreak.Length)
	assert.Equal(t, 8, s.MaxLossStreak.Length)
	assert.Equal(t, 80.0, s.MaxDrawdown.Percent)
	assert.Equal(t, "Jan 1 2025 to Jan 10 2025", s.MaxDrawdown.Period)
	assert.Equal(t, 0.0, s.RealizedWinRate)
}

// TestRun_SeedPoint tests that the equity curve starts with the initial balance
func TestRun_SeedPoint(t *testing.T) {
	s := New(testParams(), SeededRand(7)).Run()

	require.NotEmpty(t, s.EquityCurve)
	assert.Equal(t, "Jan 1 2025", s.EquityCurve[0].Label)
	assert.Equal(t, 1000.0, s.EquityCurve[0].Equity)
}

// TestRun_ZeroTradingDays tests fallback behavior for an inverted date range
func TestRun_ZeroTradingDays(t *testing.T) {
	p := testParams()
	p.WinRate = 55
	p.TradesPerDay = 3
	p.StartDate = date(2025, time.January, 10)
	p.EndDate = date(2025, time.January, 1)

	s := New(p, SeededRand(1)).Run()

	assert.Empty(t, s.EquityCurve)
	assert.Empty(t, s.Monthly)
	assert.Empty(t, s.Weekly)
	assert.Equal(t, 0, s.TotalTrades)
	assert.Equal(t, 1000.0, s.FinalEquity)

	// Derived rates fall back to defaults instead of NaN
	assert.Equal(t, 55.0, s.RealizedWinRate)
	assert.Equal(t, 0.0, s.AvgRPerDay)
	assert.Equal(t, 0.0, s.AvgRPerWeek)
	assert.Equal(t, 3.0, s.AvgTradesPerDay)
}

// TestRun_BucketConservation tests wins+losses bookkeeping across both bucket types
func TestRun_BucketConservation(t *testing.T) {
	p := testParams()
	p.TradesPerDay = 4
	p.EndDate = date(2025, time.March, 31)

	s := New(p, SeededRand(42)).Run()

	checkBuckets := func(buckets []BucketStats) {
		wins, losses, trades := 0, 0, 0
		for _, b := range buckets {
			assert.Equal(t, b.Trades, b.Wins+b.Losses)
			wins += b.Wins
			losses += b.Losses
			trades += b.Trades
		}
		assert.Equal(t, s.TotalTrades, trades)
		assert.Equal(t, s.TotalTrades, wins+losses)
	}
	checkBuckets(s.Monthly)
	checkBuckets(s.Weekly)

	assert.Len(t, s.Monthly, 3)
	assert.Equal(t, "Jan 2025", s.Monthly[0].Key)
	assert.Equal(t, "Feb 2025", s.Monthly[1].Key)
	assert.Equal(t, "Mar 2025", s.Monthly[2].Key)
}

// TestRun_CurveLengthProperty tests curve length == trading days + 1
func TestRun_CurveLengthProperty(t *testing.T) {
	p := testParams()
	p.EndDate = date(2025, time.June, 30)

	s := New(p, SeededRand(99)).Run()

	assert.Len(t, s.EquityCurve, s.TradingDays+1)
	assert.Equal(t, s.TotalTrades, s.TradingDays*p.TradesPerDay)
}

// TestRun_ProfitConsistency tests that bucket profits sum to the total profit
func TestRun_ProfitConsistency(t *testing.T) {
	p := testParams()
	p.TradesPerDay = 2
	p.EndDate = date(2025, time.April, 30)

	s := New(p, SeededRand(1234)).Run()

	sum := 0.0
	for _, b := range s.Monthly {
		sum += b.Profit
	}
	assert.InDelta(t, s.TotalProfit, sum, 1e-6)

	sum = 0.0
	for _, b := range s.Weekly {
		sum += b.Profit
	}
	assert.InDelta(t, s.TotalProfit, sum, 1e-6)

	assert.InDelta(t, s.FinalEquity, s.InitialEquity+s.TotalProfit, 1e-6)
}

// TestRun_Deterministic tests that identical seeds produce identical results
func TestRun_Deterministic(t *testing.T) {
	p := testParams()
	p.EndDate = date(2025, time.February, 28)

	a := New(p, SeededRand(5)).Run()
	b := New(p, SeededRand(5)).Run()

	assert.Equal(t, a.FinalEquity, b.FinalEquity)
	assert.Equal(t, a.TotalTrades, b.TotalTrades)
	assert.Equal(t, a.MaxWinStreak, b.MaxWinStreak)
	assert.Equal(t, a.MaxDrawdown, b.MaxDrawdown)
}

// TestRun_DrawdownNonNegative tests that recorded drawdown is never negative.
// There is no upper bound: once equity goes below zero the unclamped formula
// reports more than 100%.
func TestRun_DrawdownNonNegative(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		p := testParams()
		p.WinRate = 30
		p.EndDate = date(2025, time.March, 31)

		s := New(p, SeededRand(seed)).Run()
		assert.GreaterOrEqual(t, s.MaxDrawdown.Percent, 0.0)
		if s.MaxDrawdown.Percent > 0 {
			assert.NotEqual(t, "N/A to N/A", s.MaxDrawdown.Period)
		}
	}
}

// TestRun_RiskRewardPassthrough tests the configured ratio is carried into the summary
func TestRun_RiskRewardPassthrough(t *testing.T) {
	p := testParams()
	p.RiskReward = 3.5

	s := New(p, SeededRand(1)).Run()
	assert.Equal(t, 3.5, s.RiskReward)
}

// TestTrackers_StreakExclusivity tests that win and loss streaks never overlap
func TestTrackers_StreakExclusivity(t *testing.T) {
	tr := newTrackers(1000)
	outcomes := []bool{true, true, false, true, false, false, false, true}

	for _, win := range outcomes {
		if win {
			tr.recordWin("Jan 2 2025")
		} else {
			tr.recordLoss("Jan 2 2025")
		}
		assert.False(t, tr.winStreak > 0 && tr.lossStreak > 0)
	}

	assert.Equal(t, 2, tr.maxWinStreak)
	assert.Equal(t, 3, tr.maxLossStreak)
	assert.Equal(t, 4, tr.totalWins)
	assert.Equal(t, 4, tr.totalLosses)
}

// TestTrackers_DrawdownAgainstRunningPeak tests the sequential drawdown definition
func TestTrackers_DrawdownAgainstRunningPeak(t *testing.T) {
	tr := newTrackers(1000)

	// Climb to a new peak, then fall
	tr.equity = 1200
	tr.closeDay("Jan 2 2025")
	assert.Equal(t, 1200.0, tr.peak)
	assert.Equal(t, 0.0, tr.maxDrawdown)

	tr.equity = 900
	tr.closeDay("Jan 3 2025")
	assert.InDelta(t, 25.0, tr.maxDrawdown, 1e-9)
	assert.Equal(t, "Jan 3 2025", tr.maxDrawdownStart)

	// Partial recovery must not shrink the recorded max
	tr.equity = 1100
	tr.closeDay("Jan 6 2025")
	assert.InDelta(t, 25.0, tr.maxDrawdown, 1e-9)
	assert.Equal(t, 1200.0, tr.peak)
}

// TestTrackers_DrawdownPastFullBalance tests that drawdown stays unclamped
// when equity falls below zero
func TestTrackers_DrawdownPastFullBalance(t *testing.T) {
	tr := newTrackers(1000)

	tr.equity = -500
	tr.closeDay("Feb 3 2025")
	assert.InDelta(t, 150.0, tr.maxDrawdown, 1e-9)
	assert.Equal(t, "Feb 3 2025", tr.maxDrawdownEnd)
}

// TestBucketMap_Finalize tests ordering and the undecided-bucket win-rate fallback
func TestBucketMap_Finalize(t *testing.T) {
	m := newBucketMap()

	b := m.get("Jan 2025")
	b.Wins = 3
	b.Losses = 1
	b.Trades = 4
	m.get("Feb 2025") // discovered but no decided trades

	out := m.finalize()
	assert.Len(t, out, 2)
	assert.Equal(t, "Jan 2025", out[0].Key)
	assert.Equal(t, 75.0, out[0].WinRate)
	assert.Equal(t, 0.0, out[1].WinRate)

	// Finalization must not mutate the accumulation
	assert.Equal(t, 0.0, m.buckets["Jan 2025"].WinRate)
}
