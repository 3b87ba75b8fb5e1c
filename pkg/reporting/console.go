package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/strategy-sim/internal/montecarlo"
	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// PrintSummary renders the simulation summary as console tables.
func PrintSummary(s *simulator.SimulationSummary, verbose bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SIMULATION RESULTS")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"💰 Initial Equity", fmt.Sprintf("$%.2f", s.InitialEquity)},
		{"💰 Final Equity", fmt.Sprintf("$%.2f", s.FinalEquity)},
		{"📈 Total Profit", fmt.Sprintf("$%.2f", s.TotalProfit)},
		{"🎯 Realized Win Rate", fmt.Sprintf("%.2f%%", s.RealizedWinRate)},
		{"🔄 Total Trades", fmt.Sprintf("%d (%d days)", s.TotalTrades, s.TradingDays)},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"📊 Avg R / Day", fmt.Sprintf("%.2fR", s.AvgRPerDay)},
		{"📊 Avg R / Week", fmt.Sprintf("%.2fR", s.AvgRPerWeek)},
		{"📊 Avg Trades / Day", fmt.Sprintf("%.2f", s.AvgTradesPerDay)},
		{"⚖️ Risk:Reward", fmt.Sprintf("1:%.2f", s.RiskReward)},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"✅ Max Win Streak", fmt.Sprintf("%d (%s)", s.MaxWinStreak.Length, s.MaxWinStreak.Period)},
		{"❌ Max Loss Streak", fmt.Sprintf("%d (%s)", s.MaxLossStreak.Length, s.MaxLossStreak.Period)},
		{"📉 Max Drawdown", fmt.Sprintf("%.2f%% (%s)", s.MaxDrawdown.Percent, s.MaxDrawdown.Period)},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 22, Align: text.AlignLeft},
		{Number: 2, WidthMin: 30, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Println()

	printBuckets("MONTHLY BREAKDOWN", s.Monthly)
	printBuckets("WEEKLY BREAKDOWN", s.Weekly)

	if verbose {
		printEquityCurve(s.EquityCurve)
	}
}

func printBuckets(title string, buckets []simulator.BucketStats) {
	if len(buckets) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Period", "Wins", "Losses", "Trades", "Win Rate", "P/L"})

	for _, b := range buckets {
		t.AppendRow(table.Row{
			b.Key,
			b.Wins,
			b.Losses,
			b.Trades,
			fmt.Sprintf("%.1f%%", b.WinRate),
			fmt.Sprintf("$%.2f", b.Profit),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	t.Render()
	fmt.Println()
}

func printEquityCurve(curve []simulator.EquityPoint) {
	if len(curve) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("EQUITY CURVE")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Day", "Equity"})

	for _, p := range curve {
		t.AppendRow(table.Row{p.Label, fmt.Sprintf("$%.2f", p.Equity)})
	}

	t.Render()
	fmt.Println()
}

// PrintBatchStats renders Monte Carlo batch statistics as a console table.
func PrintBatchStats(b *montecarlo.BatchStats) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("MONTE CARLO (%d TRIALS)", b.Trials))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📈 Mean Final Equity", fmt.Sprintf("$%.2f", b.MeanFinalEquity)},
		{"📈 Median Final Equity", fmt.Sprintf("$%.2f", b.MedianFinalEquity)},
		{"📊 P5 / P95", fmt.Sprintf("$%.2f / $%.2f", b.P5FinalEquity, b.P95FinalEquity)},
		{"🏆 Best / Worst", fmt.Sprintf("$%.2f / $%.2f", b.BestFinalEquity, b.WorstFinalEquity)},
		{"✅ Probability of Profit", fmt.Sprintf("%.1f%%", b.ProbProfit)},
		{"🎯 Mean Win Rate", fmt.Sprintf("%.2f%%", b.MeanWinRate)},
		{"📉 Mean Max Drawdown", fmt.Sprintf("%.2f%%", b.MeanMaxDrawdown)},
		{"📉 Worst Max Drawdown", fmt.Sprintf("%.2f%%", b.WorstMaxDrawdown)},
	})

	t.Render()
	fmt.Println()
}
