package simulator

// trackers is the per-run mutable accumulator: running equity, streak state
// and drawdown state. Constructed at run start, discarded at run end.
type trackers struct {
	equity float64
	peak   float64

	winStreak       int
	winStreakStart  string
	lossStreak      int
	lossStreakStart string

	maxWinStreak       int
	maxWinStreakStart  string
	maxWinStreakEnd    string
	maxLossStreak      int
	maxLossStreakStart string
	maxLossStreakEnd   string

	drawdown      float64
	drawdownStart string

	maxDrawdown      float64
	maxDrawdownStart string
	maxDrawdownEnd   string

	totalWins   int
	totalLosses int
}

func newTrackers(startingEquity float64) *trackers {
	return &trackers{
		equity: startingEquity,
		peak:   startingEquity,
	}
}

// recordWin extends the current win streak and resets the loss streak. The
// best-seen record is promoted only on a strict new maximum.
func (t *trackers) recordWin(label string) {
	t.totalWins++

	if t.winStreak == 0 {
		t.winStreakStart = label
	}
	t.winStreak++
	t.lossStreak = 0

	if t.winStreak > t.maxWinStreak {
		t.maxWinStreak = t.winStreak
		t.maxWinStreakStart = t.winStreakStart
		t.maxWinStreakEnd = label
	}
}

func (t *trackers) recordLoss(label string) {
	t.totalLosses++

	if t.lossStreak == 0 {
		t.lossStreakStart = label
	}
	t.lossStreak++
	t.winStreak = 0

	if t.lossStreak > t.maxLossStreak {
		t.maxLossStreak = t.lossStreak
		t.maxLossStreakStart = t.lossStreakStart
		t.maxLossStreakEnd = label
	}
}

// closeDay updates peak and drawdown state once the day's trades are done.
// Drawdown is always measured against the running peak seen so far in this
// pass, and the max record only moves on a strict new maximum.
func (t *trackers) closeDay(label string) {
	if t.equity > t.peak {
		t.peak = t.equity
		t.drawdown = 0
		t.drawdownStart = ""
		return
	}
	if t.peak <= 0 {
		return
	}

	dd := (t.peak - t.equity) / t.peak * 100
	if dd == 0 {
		return
	}
	if t.drawdownStart == "" {
		t.drawdownStart = label
	}
	if dd > t.drawdown {
		t.drawdown = dd
	}
	if dd > t.maxDrawdown {
		t.maxDrawdown = dd
		t.maxDrawdownStart = t.drawdownStart
		t.maxDrawdownEnd = label
	}
}
