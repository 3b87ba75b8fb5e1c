package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ducminhle1904/strategy-sim/internal/simerr"
	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// DateFormat is the wire format for scenario dates.
const DateFormat = "2006-01-02"

// Scenario is the serializable form of simulation parameters, as stored in
// scenario files and named presets and as accepted by the API. Dates travel
// as "YYYY-MM-DD" strings.
type Scenario struct {
	Name           string  `json:"name,omitempty" yaml:"name,omitempty"`
	WinRate        float64 `json:"win_rate" yaml:"win_rate"`
	TradesPerDay   int     `json:"trades_per_day" yaml:"trades_per_day"`
	RiskPerTrade   float64 `json:"risk_per_trade" yaml:"risk_per_trade"`
	RiskReward     float64 `json:"risk_reward" yaml:"risk_reward"`
	StartingEquity float64 `json:"starting_equity" yaml:"starting_equity"`
	StartDate      string  `json:"start_date" yaml:"start_date"`
	EndDate        string  `json:"end_date" yaml:"end_date"`
}

// LoadScenario reads a scenario file. The format is chosen by extension:
// .yaml/.yml parse as YAML, everything else as JSON.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse scenario yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to parse scenario json: %w", err)
		}
	}

	sc.SetDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// SetDefaults fills unset numeric fields with sensible simulation defaults.
func (s *Scenario) SetDefaults() {
	if s.TradesPerDay == 0 {
		s.TradesPerDay = 1
	}
	if s.RiskPerTrade == 0 {
		s.RiskPerTrade = 100
	}
	if s.RiskReward == 0 {
		s.RiskReward = 2
	}
	if s.StartingEquity == 0 {
		s.StartingEquity = 10000
	}
}

// Validate checks the ranges the engine is entitled to assume. Risk per trade
// supports arbitrary positive magnitudes, so only the sign is checked.
func (s *Scenario) Validate() error {
	if s.WinRate < 0 || s.WinRate > 100 {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"win_rate must be between 0 and 100, got %.2f", s.WinRate)
	}
	if s.TradesPerDay <= 0 {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"trades_per_day must be positive, got %d", s.TradesPerDay)
	}
	if s.RiskPerTrade <= 0 {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"risk_per_trade must be positive, got %.2f", s.RiskPerTrade)
	}
	if s.RiskReward <= 0 {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"risk_reward must be positive, got %.2f", s.RiskReward)
	}
	if s.StartingEquity < 0 {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"starting_equity must not be negative, got %.2f", s.StartingEquity)
	}

	start, err := time.Parse(DateFormat, s.StartDate)
	if err != nil {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"start_date must be YYYY-MM-DD, got %q", s.StartDate)
	}
	end, err := time.Parse(DateFormat, s.EndDate)
	if err != nil {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"end_date must be YYYY-MM-DD, got %q", s.EndDate)
	}
	if end.Before(start) {
		return simerr.Newf(simerr.ErrorCategoryValidation, "scenario", "validate",
			"end_date %s is before start_date %s", s.EndDate, s.StartDate)
	}
	return nil
}

// ToParams converts a validated scenario into engine parameters.
func (s *Scenario) ToParams() (simulator.SimulationParams, error) {
	if err := s.Validate(); err != nil {
		return simulator.SimulationParams{}, err
	}

	start, _ := time.Parse(DateFormat, s.StartDate)
	end, _ := time.Parse(DateFormat, s.EndDate)

	return simulator.SimulationParams{
		WinRate:        s.WinRate,
		TradesPerDay:   s.TradesPerDay,
		RiskPerTrade:   s.RiskPerTrade,
		RiskReward:     s.RiskReward,
		StartingEquity: s.StartingEquity,
		StartDate:      start,
		EndDate:        end,
	}, nil
}
