package reporting

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// WriteJSON writes the summary as indented JSON to the given path, or to
// stdout when the path is empty.
func WriteJSON(s *simulator.SimulationSummary, outputFile string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// WriteCSV writes the summary metrics followed by the equity curve rows.
func WriteCSV(s *simulator.SimulationSummary, outputFile string) error {
	var out io.Writer = os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	w := csv.NewWriter(out)

	w.Write([]string{"Metric", "Value"})
	w.Write([]string{"Initial Equity", fmt.Sprintf("%.2f", s.InitialEquity)})
	w.Write([]string{"Final Equity", fmt.Sprintf("%.2f", s.FinalEquity)})
	w.Write([]string{"Total Profit", fmt.Sprintf("%.2f", s.TotalProfit)})
	w.Write([]string{"Realized Win Rate %", fmt.Sprintf("%.2f", s.RealizedWinRate)})
	w.Write([]string{"Avg R / Day", fmt.Sprintf("%.4f", s.AvgRPerDay)})
	w.Write([]string{"Avg R / Week", fmt.Sprintf("%.4f", s.AvgRPerWeek)})
	w.Write([]string{"Avg Trades / Day", fmt.Sprintf("%.2f", s.AvgTradesPerDay)})
	w.Write([]string{"Total Trades", strconv.Itoa(s.TotalTrades)})
	w.Write([]string{"Trading Days", strconv.Itoa(s.TradingDays)})
	w.Write([]string{"Max Win Streak", strconv.Itoa(s.MaxWinStreak.Length)})
	w.Write([]string{"Max Win Streak Period", s.MaxWinStreak.Period})
	w.Write([]string{"Max Loss Streak", strconv.Itoa(s.MaxLossStreak.Length)})
	w.Write([]string{"Max Loss Streak Period", s.MaxLossStreak.Period})
	w.Write([]string{"Max Drawdown %", fmt.Sprintf("%.2f", s.MaxDrawdown.Percent)})
	w.Write([]string{"Max Drawdown Period", s.MaxDrawdown.Period})

	w.Write([]string{})
	w.Write([]string{"Day", "Equity"})
	for _, p := range s.EquityCurve {
		w.Write([]string{p.Label, fmt.Sprintf("%.2f", p.Equity)})
	}

	w.Flush()
	return w.Error()
}
