package simulator

// buildSummary derives the scalar outputs from the accumulated run state.
// Every division is guarded so degenerate runs report defined fallbacks
// instead of NaN or infinity.
func buildSummary(p SimulationParams, dayCount int, tr *trackers, curve []EquityPoint, monthly, weekly *bucketMap) *SimulationSummary {
	decided := tr.totalWins + tr.totalLosses

	// With no decided trades, report the configured target instead of 0%.
	winRate := p.WinRate
	if decided > 0 {
		winRate = float64(tr.totalWins) / float64(decided) * 100
	}

	avgRPerDay := 0.0
	if dayCount > 0 && p.RiskPerTrade > 0 {
		avgRPerDay = (tr.equity - p.StartingEquity) / (p.RiskPerTrade * float64(dayCount))
	}

	avgTradesPerDay := float64(p.TradesPerDay)
	if dayCount > 0 {
		avgTradesPerDay = float64(decided) / float64(dayCount)
	}

	return &SimulationSummary{
		RealizedWinRate: winRate,
		AvgRPerDay:      avgRPerDay,
		AvgRPerWeek:     avgRPerDay * 5, // assumes 5 trading days/week
		AvgTradesPerDay: avgTradesPerDay,
		InitialEquity:   p.StartingEquity,
		FinalEquity:     tr.equity,
		TotalProfit:     tr.equity - p.StartingEquity,
		TotalTrades:     decided,
		TradingDays:     dayCount,
		MaxWinStreak: StreakRecord{
			Length: tr.maxWinStreak,
			Period: periodString(tr.maxWinStreakStart, tr.maxWinStreakEnd),
		},
		MaxLossStreak: StreakRecord{
			Length: tr.maxLossStreak,
			Period: periodString(tr.maxLossStreakStart, tr.maxLossStreakEnd),
		},
		MaxDrawdown: DrawdownRecord{
			Percent: tr.maxDrawdown,
			Period:  periodString(tr.maxDrawdownStart, tr.maxDrawdownEnd),
		},
		EquityCurve: curve,
		Monthly:     monthly.finalize(),
		Weekly:      weekly.finalize(),
		RiskReward:  p.RiskReward,
	}
}

func periodString(start, end string) string {
	if start == "" {
		start = "N/A"
	}
	if end == "" {
		end = "N/A"
	}
	return start + " to " + end
}
