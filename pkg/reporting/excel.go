package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// ExcelStyles holds the cell style IDs used across sheets.
type ExcelStyles struct {
	HeaderStyle   int
	CurrencyStyle int
	PercentStyle  int
}

// WriteSummaryXLSX writes the simulation summary to an Excel workbook with
// Summary, Equity Curve, Monthly and Weekly sheets.
func WriteSummaryXLSX(s *simulator.SimulationSummary, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const curveSheet = "Equity Curve"
	const monthlySheet = "Monthly"
	const weeklySheet = "Weekly"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	fx.NewSheet(curveSheet)
	fx.NewSheet(monthlySheet)
	fx.NewSheet(weeklySheet)

	styles, err := createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := writeSummarySheet(fx, summarySheet, s, styles); err != nil {
		return err
	}
	if err := writeCurveSheet(fx, curveSheet, s.EquityCurve, styles); err != nil {
		return err
	}
	if err := writeBucketSheet(fx, monthlySheet, s.Monthly, styles); err != nil {
		return err
	}
	if err := writeBucketSheet(fx, weeklySheet, s.Weekly, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header: dark background, white bold text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7, // currency with $ symbol
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 2, // two decimals; values are already in percent units
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	return styles, err
}

func writeSummarySheet(fx *excelize.File, sheet string, s *simulator.SimulationSummary, styles ExcelStyles) error {
	rows := []struct {
		metric string
		value  interface{}
		style  int
	}{
		{"Initial Equity", s.InitialEquity, styles.CurrencyStyle},
		{"Final Equity", s.FinalEquity, styles.CurrencyStyle},
		{"Total Profit", s.TotalProfit, styles.CurrencyStyle},
		{"Realized Win Rate %", s.RealizedWinRate, styles.PercentStyle},
		{"Avg R / Day", s.AvgRPerDay, 0},
		{"Avg R / Week", s.AvgRPerWeek, 0},
		{"Avg Trades / Day", s.AvgTradesPerDay, 0},
		{"Total Trades", s.TotalTrades, 0},
		{"Trading Days", s.TradingDays, 0},
		{"Risk:Reward", s.RiskReward, 0},
		{"Max Win Streak", s.MaxWinStreak.Length, 0},
		{"Max Win Streak Period", s.MaxWinStreak.Period, 0},
		{"Max Loss Streak", s.MaxLossStreak.Length, 0},
		{"Max Loss Streak Period", s.MaxLossStreak.Period, 0},
		{"Max Drawdown %", s.MaxDrawdown.Percent, styles.PercentStyle},
		{"Max Drawdown Period", s.MaxDrawdown.Period, 0},
	}

	if err := fx.SetCellValue(sheet, "A1", "Metric"); err != nil {
		return err
	}
	fx.SetCellValue(sheet, "B1", "Value")
	fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle)

	for i, row := range rows {
		cellA := fmt.Sprintf("A%d", i+2)
		cellB := fmt.Sprintf("B%d", i+2)
		fx.SetCellValue(sheet, cellA, row.metric)
		fx.SetCellValue(sheet, cellB, row.value)
		if row.style != 0 {
			fx.SetCellStyle(sheet, cellB, cellB, row.style)
		}
	}

	fx.SetColWidth(sheet, "A", "A", 26)
	fx.SetColWidth(sheet, "B", "B", 24)
	return nil
}

func writeCurveSheet(fx *excelize.File, sheet string, curve []simulator.EquityPoint, styles ExcelStyles) error {
	headers := []string{"Day", "Equity", "Month", "Week"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		fx.SetCellValue(sheet, cell, h)
	}
	fx.SetCellStyle(sheet, "A1", "D1", styles.HeaderStyle)

	for i, p := range curve {
		row := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Label)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Equity)
		fx.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), styles.CurrencyStyle)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.MonthKey)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.WeekKey)
	}

	fx.SetColWidth(sheet, "A", "D", 16)
	return nil
}

func writeBucketSheet(fx *excelize.File, sheet string, buckets []simulator.BucketStats, styles ExcelStyles) error {
	headers := []string{"Period", "Wins", "Losses", "Trades", "Win Rate %", "P/L"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		fx.SetCellValue(sheet, cell, h)
	}
	fx.SetCellStyle(sheet, "A1", "F1", styles.HeaderStyle)

	for i, b := range buckets {
		row := i + 2
		fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), b.Key)
		fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.Wins)
		fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.Losses)
		fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), b.Trades)
		fx.SetCellValue(sheet, fmt.Sprintf("E%d", row), b.WinRate)
		fx.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), styles.PercentStyle)
		fx.SetCellValue(sheet, fmt.Sprintf("F%d", row), b.Profit)
		fx.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), styles.CurrencyStyle)
	}

	fx.SetColWidth(sheet, "A", "F", 14)
	return nil
}
