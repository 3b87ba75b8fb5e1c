package simulator

import "time"

// SimulationParams represents the complete input for one simulation run.
// Validation happens at the boundary (config/API); the engine itself treats
// degenerate inputs as data-level fallbacks, never as errors.
type SimulationParams struct {
	WinRate        float64   `json:"win_rate"`        // Target win rate as a percentage (0-100)
	TradesPerDay   int       `json:"trades_per_day"`  // Independent trials per trading day
	RiskPerTrade   float64   `json:"risk_per_trade"`  // Flat risk amount per trade in account currency
	RiskReward     float64   `json:"risk_reward"`     // Reward per trade = risk * ratio
	StartingEquity float64   `json:"starting_equity"` // Account balance at the start of the run
	StartDate      time.Time `json:"start_date"`      // First calendar day of the range (date precision)
	EndDate        time.Time `json:"end_date"`        // Last calendar day of the range, inclusive
}

// TradingDay is a single business day in the simulated range, tagged with the
// display label and bucket keys the aggregation stages group by.
type TradingDay struct {
	Date     time.Time
	Label    string // e.g. "Mar 5 2025"
	MonthKey string // e.g. "Mar 2025"
	WeekKey  string // e.g. "Week 10, 2025"
}

// EquityPoint is one row of the equity curve.
type EquityPoint struct {
	Label    string  `json:"label"`
	Equity   float64 `json:"equity"`
	MonthKey string  `json:"month_key"`
	WeekKey  string  `json:"week_key"`
}

// BucketStats accumulates trade outcomes for one reporting bucket (a month or
// a week). WinRate is derived only at finalization.
type BucketStats struct {
	Key     string  `json:"key"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Profit  float64 `json:"profit"`
	Trades  int     `json:"trades"`
	WinRate float64 `json:"win_rate"`
}

// StreakRecord describes the longest run of same-outcome trades.
type StreakRecord struct {
	Length int    `json:"length"`
	Period string `json:"period"` // "<start> to <end>" or "N/A to N/A"
}

// DrawdownRecord describes the deepest decline from a running equity peak.
type DrawdownRecord struct {
	Percent float64 `json:"percent"`
	Period  string  `json:"period"`
}

// SimulationSummary is the finished output of a run. All percentages and
// totals arrive pre-computed; consumers perform no further derivation.
type SimulationSummary struct {
	RealizedWinRate float64        `json:"realized_win_rate"`
	AvgRPerDay      float64        `json:"avg_r_per_day"`
	AvgRPerWeek     float64        `json:"avg_r_per_week"`
	AvgTradesPerDay float64        `json:"avg_trades_per_day"`
	InitialEquity   float64        `json:"initial_equity"`
	FinalEquity     float64        `json:"final_equity"`
	TotalProfit     float64        `json:"total_profit"`
	TotalTrades     int            `json:"total_trades"`
	TradingDays     int            `json:"trading_days"`
	MaxWinStreak    StreakRecord   `json:"max_win_streak"`
	MaxLossStreak   StreakRecord   `json:"max_loss_streak"`
	MaxDrawdown     DrawdownRecord `json:"max_drawdown"`
	EquityCurve     []EquityPoint  `json:"equity_curve"`
	Monthly         []BucketStats  `json:"monthly"`
	Weekly          []BucketStats  `json:"weekly"`
	RiskReward      float64        `json:"risk_reward"`
}
