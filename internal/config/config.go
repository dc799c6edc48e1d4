// Package config loads table configuration from an HCL file with environment
// overrides.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the complete game configuration
type Config struct {
	Table TableSettings
	UI    UISettings
}

// fileConfig is the HCL decode target. The blocks are pointers so a config
// file may carry either block, both or neither.
type fileConfig struct {
	Table *TableSettings `hcl:"table,block"`
	UI    *UISettings    `hcl:"ui,block"`
}

// TableSettings contains the card-table parameters
type TableSettings struct {
	Decks         int `hcl:"decks,optional"`
	StartingChips int `hcl:"starting_chips,optional"`
	BaseBet       int `hcl:"base_bet,optional"`
}

// UISettings contains renderer and persistence settings
type UISettings struct {
	Pacing     string `hcl:"pacing,optional"` // fast, normal or slow
	UpcardOnly bool   `hcl:"upcard_only,optional"`
	StatsFile  string `hcl:"stats_file,optional"`
	LogFile    string `hcl:"log_file,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// envOverrides mirrors the settings that can be supplied through TWENTYONE_*
// environment variables, layered over the file config.
type envOverrides struct {
	Decks         int    `envconfig:"DECKS"`
	StartingChips int    `envconfig:"STARTING_CHIPS"`
	BaseBet       int    `envconfig:"BASE_BET"`
	Pacing        string `envconfig:"PACING"`
	StatsFile     string `envconfig:"STATS_FILE"`
	LogFile       string `envconfig:"LOG_FILE"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
}

// Default returns the standard single-deck table.
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Decks:         1,
			StartingChips: 100,
			BaseBet:       10,
		},
		UI: UISettings{
			Pacing:    "normal",
			StatsFile: "player_stats.db",
			LogFile:   "twentyone.log",
			LogLevel:  "info",
		},
	}
}

// Load reads configuration from an HCL file, fills gaps with defaults and
// applies TWENTYONE_* environment overrides. A missing file is not an error;
// defaults apply.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(filename); err == nil {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
		}
		var loaded fileConfig
		if diags := gohcl.DecodeBody(file.Body, nil, &loaded); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
		}
		applyFile(cfg, &loaded)
	}

	var env envOverrides
	if err := envconfig.Process("twentyone", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	applyEnv(cfg, &env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a user could plausibly get wrong.
func (c *Config) Validate() error {
	switch c.Table.Decks {
	case 1, 2, 4, 6:
	default:
		return fmt.Errorf("decks must be 1, 2, 4 or 6, got %d", c.Table.Decks)
	}
	if c.Table.StartingChips < 1 {
		return fmt.Errorf("starting_chips must be positive, got %d", c.Table.StartingChips)
	}
	if c.Table.BaseBet < 1 {
		return fmt.Errorf("base_bet must be positive, got %d", c.Table.BaseBet)
	}
	switch c.UI.Pacing {
	case "fast", "normal", "slow":
	default:
		return fmt.Errorf("pacing must be fast, normal or slow, got %q", c.UI.Pacing)
	}
	return nil
}

func applyFile(dst *Config, src *fileConfig) {
	if src.Table != nil {
		if src.Table.Decks != 0 {
			dst.Table.Decks = src.Table.Decks
		}
		if src.Table.StartingChips != 0 {
			dst.Table.StartingChips = src.Table.StartingChips
		}
		if src.Table.BaseBet != 0 {
			dst.Table.BaseBet = src.Table.BaseBet
		}
	}
	if src.UI != nil {
		if src.UI.Pacing != "" {
			dst.UI.Pacing = src.UI.Pacing
		}
		dst.UI.UpcardOnly = dst.UI.UpcardOnly || src.UI.UpcardOnly
		if src.UI.StatsFile != "" {
			dst.UI.StatsFile = src.UI.StatsFile
		}
		if src.UI.LogFile != "" {
			dst.UI.LogFile = src.UI.LogFile
		}
		if src.UI.LogLevel != "" {
			dst.UI.LogLevel = src.UI.LogLevel
		}
	}
}

func applyEnv(dst *Config, env *envOverrides) {
	if env.Decks != 0 {
		dst.Table.Decks = env.Decks
	}
	if env.StartingChips != 0 {
		dst.Table.StartingChips = env.StartingChips
	}
	if env.BaseBet != 0 {
		dst.Table.BaseBet = env.BaseBet
	}
	if env.Pacing != "" {
		dst.UI.Pacing = env.Pacing
	}
	if env.StatsFile != "" {
		dst.UI.StatsFile = env.StatsFile
	}
	if env.LogFile != "" {
		dst.UI.LogFile = env.LogFile
	}
	if env.LogLevel != "" {
		dst.UI.LogLevel = env.LogLevel
	}
}
