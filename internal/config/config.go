package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Normalizer mode selects which implementation turns raw text into a batch.
const (
	NormalizerRule   = "rule"
	NormalizerOracle = "oracle"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	NormalizerMode        string
	GeminiAPIKey          string
	GeminiModel           string
	SheetsCredentialsFile string
	SpreadsheetID         string
	AuthSecret            string
	OperatorPasswordHash  string
	UnitPrice             int
	UnitCost              int
	ProfitTarget          int
	ShutdownTimeout       time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultNormalizerMode  = NormalizerRule
	defaultGeminiModel     = "gemini-1.5-pro"
	defaultAuthSecret      = "change-me-in-production"
	defaultUnitPrice       = 650
	defaultUnitCost        = 520
	defaultProfitTarget    = 25000
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		NormalizerMode:        getString(lookup, "NORMALIZER", defaultNormalizerMode),
		GeminiAPIKey:          getString(lookup, "GEMINI_API_KEY", ""),
		GeminiModel:           getString(lookup, "GEMINI_MODEL", defaultGeminiModel),
		SheetsCredentialsFile: getString(lookup, "SHEETS_CREDENTIALS_FILE", ""),
		SpreadsheetID:         getString(lookup, "SPREADSHEET_ID", ""),
		AuthSecret:            getString(lookup, "AUTH_SECRET", defaultAuthSecret),
		OperatorPasswordHash:  getString(lookup, "OPERATOR_PASSWORD_HASH", ""),
		UnitPrice:             getInt(lookup, "UNIT_PRICE", defaultUnitPrice),
		UnitCost:              getInt(lookup, "UNIT_COST", defaultUnitCost),
		ProfitTarget:          getInt(lookup, "PROFIT_TARGET", defaultProfitTarget),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("gearflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.NormalizerMode, "normalizer", cfg.NormalizerMode, "Normalizer implementation: rule or oracle")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", cfg.GeminiModel, "Gemini model used by the oracle normalizer")
	fs.StringVar(&cfg.SheetsCredentialsFile, "sheets-credentials", cfg.SheetsCredentialsFile, "Path to the Sheets service account JSON")
	fs.StringVar(&cfg.SpreadsheetID, "spreadsheet", cfg.SpreadsheetID, "Target spreadsheet identifier")
	fs.IntVar(&cfg.UnitPrice, "unit-price", cfg.UnitPrice, "Selling price per unit in BDT")
	fs.IntVar(&cfg.UnitCost, "unit-cost", cfg.UnitCost, "Assumed cost per unit in BDT")
	fs.IntVar(&cfg.ProfitTarget, "profit-target", cfg.ProfitTarget, "Daily profit target in BDT")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = string(content)
	}

	if cfg.UnitPrice <= 0 {
		cfg.UnitPrice = defaultUnitPrice
	}

	if cfg.UnitCost < 0 {
		cfg.UnitCost = defaultUnitCost
	}

	if cfg.ProfitTarget <= 0 {
		cfg.ProfitTarget = defaultProfitTarget
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	switch cfg.NormalizerMode {
	case NormalizerRule:
	case NormalizerOracle:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("oracle normalizer requires GEMINI_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown normalizer mode %q", cfg.NormalizerMode)
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
