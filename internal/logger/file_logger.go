package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ducminhle1904/strategy-sim/internal/montecarlo"
	"github.com/ducminhle1904/strategy-sim/internal/simulator"
)

// Logger is a file logger for simulation activity: one dated file per day,
// one line per run.
type Logger struct {
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	logDir  string
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARN"
	LogLevelError   LogLevel = "ERROR"
	LogLevelRun     LogLevel = "RUN"
)

// NewLogger creates a file logger writing under logDir.
func NewLogger(logDir string) (*Logger, error) {
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("simulator_%s.log", time.Now().Format("2006-01-02"))
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		logFile: file,
		logger:  log.New(file, "", 0),
		logDir:  logDir,
	}, nil
}

// Log writes a formatted log entry with the specified level.
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", timestamp, level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// LogRun writes the audit line for a completed simulation run.
func (l *Logger) LogRun(trigger string, p simulator.SimulationParams, s *simulator.SimulationSummary, duration time.Duration) {
	l.Log(LogLevelRun,
		"trigger=%s range=%s..%s win_rate=%.1f trades/day=%d risk=%.2f rr=%.2f days=%d trades=%d final=%.2f max_dd=%.2f%% took=%s",
		trigger,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
		p.WinRate, p.TradesPerDay, p.RiskPerTrade, p.RiskReward,
		s.TradingDays, s.TotalTrades, s.FinalEquity, s.MaxDrawdown.Percent,
		duration.Round(time.Microsecond))
}

// LogBatch writes the audit line for a completed Monte Carlo batch.
func (l *Logger) LogBatch(trigger string, p simulator.SimulationParams, b *montecarlo.BatchStats, duration time.Duration) {
	l.Log(LogLevelRun,
		"trigger=%s range=%s..%s win_rate=%.1f trials=%d mean_final=%.2f p5=%.2f p95=%.2f prob_profit=%.1f%% took=%s",
		trigger,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"),
		p.WinRate, b.Trials,
		b.MeanFinalEquity, b.P5FinalEquity, b.P95FinalEquity, b.ProbProfit,
		duration.Round(time.Microsecond))
}

// Close flushes and closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logFile.Close()
}
