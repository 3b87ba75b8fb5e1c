package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ducminhle1904/strategy-sim/internal/config"
	"github.com/ducminhle1904/strategy-sim/internal/logger"
	"github.com/ducminhle1904/strategy-sim/internal/monitoring"
	"github.com/ducminhle1904/strategy-sim/internal/montecarlo"
	"github.com/ducminhle1904/strategy-sim/internal/simulator"
	"github.com/ducminhle1904/strategy-sim/pkg/reporting"
)

const (
	AppName    = "Strategy Simulator"
	AppVersion = "1.0.0"
)

func main() {
	flags := NewSimFlags()
	flag.Parse()

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}
	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	if err := ValidateSimFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	// Load environment (optional, for LOG_DIR etc.)
	if err := godotenv.Load(*flags.EnvFile); err == nil {
		log.Printf("✅ Loaded environment from %s", *flags.EnvFile)
	}

	scenario, err := buildScenario(flags)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	params, err := scenario.ToParams()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	runLog, err := logger.NewLogger(os.Getenv("LOG_DIR"))
	if err != nil {
		log.Printf("⚠️ Run log disabled: %v", err)
		runLog = nil
	}
	if runLog != nil {
		defer runLog.Close()
	}

	if *flags.Trials > 1 {
		runBatch(params, flags, runLog)
		return
	}

	src := simulator.DefaultRand()
	if *flags.Seed != 0 {
		src = simulator.SeededRand(*flags.Seed)
	}

	start := time.Now()
	summary := simulator.New(params, src).Run()
	elapsed := time.Since(start)

	monitoring.RecordSimulation("cli", elapsed)
	if runLog != nil {
		runLog.LogRun("cli", params, summary, elapsed)
	}

	if summary.TradingDays == 0 {
		log.Println("⚠️ Date range contains no trading days; reporting defaults")
	}

	outputResults(summary, flags)
}

// buildScenario merges the config file (if any) with flag overrides.
func buildScenario(flags *SimFlags) (*config.Scenario, error) {
	var sc *config.Scenario
	if *flags.ConfigFile != "" {
		loaded, err := config.LoadScenario(*flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		sc = loaded
	} else {
		sc = &config.Scenario{WinRate: 50}
		sc.SetDefaults()
	}

	if *flags.WinRate >= 0 {
		sc.WinRate = *flags.WinRate
	}
	if *flags.TradesPerDay > 0 {
		sc.TradesPerDay = *flags.TradesPerDay
	}
	if *flags.RiskPerTrade > 0 {
		sc.RiskPerTrade = *flags.RiskPerTrade
	}
	if *flags.RiskReward > 0 {
		sc.RiskReward = *flags.RiskReward
	}
	if *flags.StartingEquity > 0 {
		sc.StartingEquity = *flags.StartingEquity
	}
	if *flags.StartDate != "" {
		sc.StartDate = *flags.StartDate
	}
	if *flags.EndDate != "" {
		sc.EndDate = *flags.EndDate
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func runBatch(params simulator.SimulationParams, flags *SimFlags, runLog *logger.Logger) {
	seed := *flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	stats := montecarlo.RunBatch(params, *flags.Trials, seed)
	elapsed := time.Since(start)

	monitoring.RecordBatch(*flags.Trials, elapsed)
	if runLog != nil {
		runLog.LogBatch("cli", params, stats, elapsed)
	}

	reporting.PrintBatchStats(stats)
}

func outputResults(summary *simulator.SimulationSummary, flags *SimFlags) {
	switch *flags.OutputFormat {
	case "json":
		if err := reporting.WriteJSON(summary, *flags.OutputFile); err != nil {
			log.Fatalf("❌ Failed to write JSON: %v", err)
		}
	case "csv":
		if err := reporting.WriteCSV(summary, *flags.OutputFile); err != nil {
			log.Fatalf("❌ Failed to write CSV: %v", err)
		}
	case "xlsx":
		if err := reporting.WriteSummaryXLSX(summary, *flags.OutputFile); err != nil {
			log.Fatalf("❌ Failed to write Excel report: %v", err)
		}
		fmt.Printf("Results saved to: %s\n", *flags.OutputFile)
	default:
		reporting.PrintSummary(summary, *flags.Verbose)
	}
}

func printUsageHelp() {
	fmt.Printf("%s v%s - simulate a fixed-risk strategy over a date range\n\n", AppName, AppVersion)
	fmt.Println("Usage:")
	fmt.Println("  simulate -start 2025-01-01 -end 2025-06-30 -win-rate 55 -risk 100 -rr 2")
	fmt.Println("  simulate -config scenario.yaml -format xlsx -output results/run.xlsx")
	fmt.Println("  simulate -config scenario.json -trials 1000 -seed 42")
	fmt.Println("\nFlags:")
	flag.PrintDefaults()
}
