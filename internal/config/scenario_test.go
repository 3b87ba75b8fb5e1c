package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/strategy-sim/internal/simerr"
)

func validScenario() Scenario {
	return Scenario{
		WinRate:        55,
		TradesPerDay:   2,
		RiskPerTrade:   100,
		RiskReward:     2,
		StartingEquity: 1000,
		StartDate:      "2025-01-01",
		EndDate:        "2025-03-31",
	}
}

// TestScenarioValidate_Valid tests a well-formed scenario
func TestScenarioValidate_Valid(t *testing.T) {
	sc := validScenario()
	assert.NoError(t, sc.Validate())
}

// TestScenarioValidate_Ranges tests each range rejection
func TestScenarioValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"win rate above 100", func(s *Scenario) { s.WinRate = 101 }},
		{"negative win rate", func(s *Scenario) { s.WinRate = -1 }},
		{"zero trades per day", func(s *Scenario) { s.TradesPerDay = 0 }},
		{"negative risk", func(s *Scenario) { s.RiskPerTrade = -50 }},
		{"zero risk reward", func(s *Scenario) { s.RiskReward = 0 }},
		{"negative starting equity", func(s *Scenario) { s.StartingEquity = -1 }},
		{"bad start date", func(s *Scenario) { s.StartDate = "01/01/2025" }},
		{"bad end date", func(s *Scenario) { s.EndDate = "soon" }},
		{"inverted range", func(s *Scenario) { s.StartDate = "2025-06-01"; s.EndDate = "2025-01-01" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validScenario()
			tt.mutate(&sc)
			err := sc.Validate()
			require.Error(t, err)
			assert.True(t, simerr.IsValidation(err))
		})
	}
}

// TestScenarioValidate_LargeRiskAmount tests that risk magnitude is uncapped
func TestScenarioValidate_LargeRiskAmount(t *testing.T) {
	sc := validScenario()
	sc.RiskPerTrade = 5_000_000_000
	assert.NoError(t, sc.Validate())
}

// TestScenarioToParams tests conversion into engine parameters
func TestScenarioToParams(t *testing.T) {
	sc := validScenario()
	p, err := sc.ToParams()
	require.NoError(t, err)

	assert.Equal(t, 55.0, p.WinRate)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), p.EndDate)
}

// TestLoadScenario_JSON tests loading a JSON scenario file
func TestLoadScenario_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	data := `{
		"win_rate": 60,
		"trades_per_day": 3,
		"risk_per_trade": 250,
		"risk_reward": 1.5,
		"starting_equity": 5000,
		"start_date": "2025-02-01",
		"end_date": "2025-02-28"
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 60.0, sc.WinRate)
	assert.Equal(t, 3, sc.TradesPerDay)
}

// TestLoadScenario_YAML tests loading a YAML scenario file with defaults
func TestLoadScenario_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := "win_rate: 45\nstart_date: \"2025-01-06\"\nend_date: \"2025-01-31\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, 45.0, sc.WinRate)

	// Unset fields picked up defaults
	assert.Equal(t, 1, sc.TradesPerDay)
	assert.Equal(t, 100.0, sc.RiskPerTrade)
	assert.Equal(t, 2.0, sc.RiskReward)
	assert.Equal(t, 10000.0, sc.StartingEquity)
}

// TestLoadScenario_Invalid tests that invalid files are rejected
func TestLoadScenario_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"win_rate": 150, "start_date": "2025-01-01", "end_date": "2025-01-31"}`), 0644))

	_, err := LoadScenario(path)
	assert.Error(t, err)
}

// TestLoadServer_Defaults tests env defaults for the server config
func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("PROMETHEUS_PORT", "3999")

	cfg := LoadServer()
	assert.Equal(t, 8080, cfg.API.Port)
	assert.Equal(t, 3999, cfg.Monitoring.PrometheusPort)
	assert.Equal(t, "data/presets.json", cfg.Presets.Path)
}
