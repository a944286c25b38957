package contract

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/workwellhq/workwell/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 4
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the validated runtime configuration for an evaluation.
type Config struct {
	DataDir string    // Directory holding the per-domain history files
	EvalAt  time.Time // Reference time for weekly windows ("now" unless pinned)

	Detail     bool
	Explain    bool
	Record     bool // Persist a snapshot of this evaluation
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Color      bool
	Width      int // Terminal width override (0 = auto-detect)

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string

	HighRiskThreshold float64
	// Thresholds gate the check command: "whi" plus any domain name,
	// score at or above the threshold fails the check.
	Thresholds map[string]float64
}

// Clone returns a copy of the config safe for per-request mutation.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Thresholds = maps.Clone(c.Thresholds)
	return &clone
}

// ConfigRawInput holds the raw, unvalidated configuration from all
// sources (file, env, flags). Viper unmarshals into this struct;
// ProcessAndValidate turns it into a final Config.
type ConfigRawInput struct {
	DataDirStr         string  `mapstructure:"data-dir"`
	AsOfStr            string  `mapstructure:"as-of"`
	Detail             bool    `mapstructure:"detail"`
	Explain            bool    `mapstructure:"explain"`
	Record             bool    `mapstructure:"record"`
	Precision          int     `mapstructure:"precision"`
	Output             string  `mapstructure:"output"`
	OutputFile         string  `mapstructure:"output-file"`
	Color              string  `mapstructure:"color"`
	Width              int     `mapstructure:"width"`
	SnapshotBackend    string  `mapstructure:"snapshot-backend"`
	SnapshotDBConnect  string  `mapstructure:"snapshot-db-connect"`
	HighRiskThreshold  float64 `mapstructure:"risk-threshold"`
	ThresholdsOverride string  `mapstructure:"thresholds-override"`
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Data directory ---
	cfg.DataDir = input.DataDirStr
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	// --- 2. Evaluation reference time ---
	evalAt, err := ParseEvalTime(input.AsOfStr, time.Now())
	if err != nil {
		return err
	}
	cfg.EvalAt = evalAt

	// --- 3. Precision ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 4. Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 5. Color and width ---
	cfg.Color = parseBoolish(input.Color, true)
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 6. Snapshot backend ---
	backend := schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidSnapshotBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, none", input.SnapshotBackend)
	}
	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = input.SnapshotDBConnect

	// --- 7. High-risk threshold ---
	cfg.HighRiskThreshold = input.HighRiskThreshold
	if cfg.HighRiskThreshold <= 0 {
		cfg.HighRiskThreshold = schema.DefaultHighRiskThreshold
	}
	if cfg.HighRiskThreshold > 100 {
		return fmt.Errorf("risk threshold cannot exceed 100 (received %g)", cfg.HighRiskThreshold)
	}

	// --- 8. Check thresholds ---
	thresholds, err := ParseThresholds(input.ThresholdsOverride)
	if err != nil {
		return err
	}
	cfg.Thresholds = thresholds

	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Record = input.Record
	return nil
}

// ParseThresholds parses a check gate spec like "whi:60,msk:70" into a
// threshold map. Keys are "whi" or a declared domain name.
func ParseThresholds(s string) (map[string]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	valid := map[string]struct{}{"whi": {}}
	for _, d := range schema.AllDomains {
		valid[string(d)] = struct{}{}
	}

	out := make(map[string]float64)
	for part := range strings.SplitSeq(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid threshold %q: want name:value", part)
		}
		name := strings.ToLower(strings.TrimSpace(kv[0]))
		if _, ok := valid[name]; !ok {
			return nil, fmt.Errorf("unknown threshold target %q", name)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold value for %q: %w", name, err)
		}
		if value < 0 || value > 100 {
			return nil, fmt.Errorf("threshold for %q must be within [0,100] (received %g)", name, value)
		}
		out[name] = value
	}
	return out, nil
}

// parseBoolish interprets yes/no/true/false/1/0 strings leniently.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
