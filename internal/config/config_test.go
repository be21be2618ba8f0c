package config

import (
	"bytes"
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Strategy != StrategyAuto {
		t.Errorf("Strategy = %v, want auto", cfg.Strategy)
	}
	if cfg.Difficulty != 2 {
		t.Errorf("Difficulty = %d, want 2", cfg.Difficulty)
	}
	if cfg.Margin != 25 {
		t.Errorf("Margin = %d, want 25", cfg.Margin)
	}
	if cfg.MateBonus != 10000 {
		t.Errorf("MateBonus = %d, want 10000", cfg.MateBonus)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default SearchConfig invalid: %v", err)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{
			name:    "zero config is valid",
			cfg:     SearchConfig{},
			wantErr: false,
		},
		{
			name:    "negative difficulty",
			cfg:     SearchConfig{Difficulty: -1},
			wantErr: true,
		},
		{
			name:    "minimax depth 3",
			cfg:     SearchConfig{Strategy: StrategyMiniMax, Depth: 3},
			wantErr: false,
		},
		{
			name:    "minimax depth 0",
			cfg:     SearchConfig{Strategy: StrategyMiniMax},
			wantErr: true,
		},
		{
			name:    "ply search depth 2",
			cfg:     SearchConfig{Strategy: StrategyPlySearch, Depth: 2},
			wantErr: false,
		},
		{
			name:    "ply search depth 3",
			cfg:     SearchConfig{Strategy: StrategyPlySearch, Depth: 3},
			wantErr: true,
		},
		{
			name:    "unknown strategy",
			cfg:     SearchConfig{Strategy: Strategy(9)},
			wantErr: true,
		},
		{
			name:    "negative workers",
			cfg:     SearchConfig{Workers: -2},
			wantErr: true,
		},
		{
			name:    "negative margin",
			cfg:     SearchConfig{Margin: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"", StrategyAuto, false},
		{"auto", StrategyAuto, false},
		{"minimax", StrategyMiniMax, false},
		{"ply", StrategyPlySearch, false},
		{"alphabeta", StrategyAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.input && tt.input != "" {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}

// TestNotationConfig_Defaults verifies NotationConfig has sensible defaults
func TestNotationConfig_Defaults(t *testing.T) {
	cfg := NewNotationConfig()

	if cfg.Format != SAN {
		t.Errorf("Format = %v, want SAN", cfg.Format)
	}
	if cfg.StrictDisambiguation {
		t.Error("StrictDisambiguation should be false by default")
	}
}

// TestConfig_SubConfigs verifies that Config carries its sub-configs
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Search == nil || cfg.Notation == nil {
		t.Fatal("NewConfig should populate Search and Notation")
	}
	if cfg.Notation.Format != SAN {
		t.Errorf("Notation.Format = %v, want %v", cfg.Notation.Format, SAN)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default Config invalid: %v", err)
	}

	cfg.Search.Strategy = StrategyPlySearch
	cfg.Search.Depth = 5
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		level     int
		want      string
	}{
		{"quiet drops game events", Quiet, GameEvents, ""},
		{"game events logged", GameEvents, GameEvents, "ply 3\n"},
		{"commentary dropped at game events", GameEvents, Commentary, ""},
		{"commentary logged", Commentary, Commentary, "ply 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(tt.verbosity).Build()
			cfg.Logf(tt.level, "ply %d\n", 3)
			if buf.String() != tt.want {
				t.Errorf("Logf wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}

	var nilCfg *Config
	nilCfg.Logf(Quiet, "ignored")
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStrategy(StrategyMiniMax, 3).
		WithWorkers(4).
		WithSeed(7).
		WithMargin(40).
		WithStrictDisambiguation(true).
		WithOutputFormat(UCI).
		WithOutput(out).
		Build()

	if cfg.Search.Strategy != StrategyMiniMax || cfg.Search.Depth != 3 {
		t.Errorf("Strategy = %v depth %d, want minimax depth 3", cfg.Search.Strategy, cfg.Search.Depth)
	}
	if cfg.Search.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Search.Workers)
	}
	if cfg.Search.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Search.Seed)
	}
	if cfg.Search.Margin != 40 {
		t.Errorf("Margin = %d, want 40", cfg.Search.Margin)
	}
	if !cfg.Notation.StrictDisambiguation {
		t.Error("StrictDisambiguation should be true")
	}
	if cfg.Notation.Format != UCI {
		t.Errorf("Format = %v, want UCI", cfg.Notation.Format)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}

	cfg = NewConfigBuilder().WithDifficulty(4).Build()
	if cfg.Search.Strategy != StrategyAuto || cfg.Search.Difficulty != 4 {
		t.Errorf("WithDifficulty(4) = %v/%d", cfg.Search.Strategy, cfg.Search.Difficulty)
	}
}
