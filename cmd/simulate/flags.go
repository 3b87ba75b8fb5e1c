package main

import (
	"flag"
	"fmt"
	"strings"
)

// SimFlags holds all command line flags for the simulate command
type SimFlags struct {
	// Configuration
	ConfigFile *string

	// Simulation parameters (override the config file when set)
	WinRate        *float64
	TradesPerDay   *int
	RiskPerTrade   *float64
	RiskReward     *float64
	StartingEquity *float64
	StartDate      *string
	EndDate        *string

	// Randomness
	Seed *int64

	// Monte Carlo
	Trials *int

	// Output options
	OutputFormat *string
	OutputFile   *string
	Verbose      *bool

	// Environment
	EnvFile *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewSimFlags registers all flags with the default flag set
func NewSimFlags() *SimFlags {
	return &SimFlags{
		ConfigFile: flag.String("config", "", "Scenario file (.json or .yaml)"),

		WinRate:        flag.Float64("win-rate", -1, "Target win rate percentage (0-100)"),
		TradesPerDay:   flag.Int("trades", 0, "Trades per day"),
		RiskPerTrade:   flag.Float64("risk", 0, "Risk amount per trade"),
		RiskReward:     flag.Float64("rr", 0, "Risk:reward ratio"),
		StartingEquity: flag.Float64("equity", 0, "Starting equity"),
		StartDate:      flag.String("start", "", "Start date (YYYY-MM-DD)"),
		EndDate:        flag.String("end", "", "End date (YYYY-MM-DD)"),

		Seed: flag.Int64("seed", 0, "Random seed (0 = time-based)"),

		Trials: flag.Int("trials", 1, "Monte Carlo trial count (1 = single run)"),

		OutputFormat: flag.String("format", "console", "Output format: console, json, csv, xlsx"),
		OutputFile:   flag.String("output", "", "Output file path (default: stdout / results dir)"),
		Verbose:      flag.Bool("verbose", false, "Include the full equity curve in console output"),

		EnvFile: flag.String("env", ".env", "Environment file path"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show help information"),
	}
}

// ValidateSimFlags checks flag combinations before the run starts
func ValidateSimFlags(flags *SimFlags) error {
	var errs []string

	switch *flags.OutputFormat {
	case "console", "json", "csv", "xlsx":
	default:
		errs = append(errs, fmt.Sprintf("format must be console, json, csv or xlsx, got: %s", *flags.OutputFormat))
	}

	if *flags.OutputFormat == "xlsx" && *flags.OutputFile == "" {
		errs = append(errs, "xlsx format requires -output")
	}

	if *flags.Trials < 1 {
		errs = append(errs, fmt.Sprintf("trials must be at least 1, got: %d", *flags.Trials))
	}

	if *flags.ConfigFile == "" && (*flags.StartDate == "" || *flags.EndDate == "") {
		errs = append(errs, "either -config or both -start and -end are required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("flag validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
