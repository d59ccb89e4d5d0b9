// Package config loads runner configuration and scorer weight overrides from
// a YAML file and CHESS_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/fitil-jpg/chess-sub000/engine"
)

type Config struct {
	Games    int    `mapstructure:"games"`
	Seed     uint64 `mapstructure:"seed"`
	MaxPlies int    `mapstructure:"max_plies"`
	LogLevel string `mapstructure:"log_level"`

	Fortify    map[string]float64 `mapstructure:"fortify"`
	Aggression map[string]int     `mapstructure:"aggression"`
	Threat     map[string]int     `mapstructure:"threat"`
}

// Load reads the config file at path (optional, pass "" to use defaults and
// environment only).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("games", 1)
	v.SetDefault("seed", 1)
	v.SetDefault("max_plies", 300)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("CHESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Weights applies the file's overrides on top of the engine defaults.
// Unknown keys are ignored rather than rejected, matching how the weight
// files were historically hand-edited.
func (c *Config) Weights() engine.Weights {
	w := engine.DefaultWeights()
	for k, val := range c.Fortify {
		switch strings.ToLower(k) {
		case "density":
			w.Fortify.Density = val
		case "defenders":
			w.Fortify.Defenders = val
		case "develop":
			w.Fortify.Develop = val
		case "capture":
			w.Fortify.Capture = val
		case "opp_doubled":
			w.Fortify.OppDoubled = val
		case "opp_shield":
			w.Fortify.OppShield = val
		case "jitter_eps":
			w.Fortify.JitterEps = val
		}
	}
	for k, val := range c.Aggression {
		switch strings.ToLower(k) {
		case "hanging_capture":
			w.Aggression.HangingCapture = val
		case "develop":
			w.Aggression.Develop = val
		case "check":
			w.Aggression.Check = val
		case "safe_check_bonus":
			w.Aggression.SafeCheckBonus = val
		case "capture":
			w.Aggression.Capture = val
		case "quiet":
			w.Aggression.Quiet = val
		}
	}
	for k, val := range c.Threat {
		switch strings.ToLower(k) {
		case "pawn_attacks_queen":
			w.Threat.PawnAttacksQueen = val
		case "attacks_queen":
			w.Threat.AttacksQueen = val
		case "knight_fork":
			w.Threat.KnightFork = val
		case "hanging_capture":
			w.Threat.HangingCapture = val
		case "defended_capture":
			w.Threat.DefendedCapture = val
		case "check":
			w.Threat.Check = val
		case "develop":
			w.Threat.Develop = val
		case "max_opp":
			w.Threat.MaxOpp = val
		case "max_our":
			w.Threat.MaxOur = val
		}
	}
	return w
}
