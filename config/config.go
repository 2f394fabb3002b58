// Package config loads display tuning from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mfranca/tbquality/evalfmt"
)

// Config carries the evaluation display thresholds, in centipawns.
type Config struct {
	NeutralThreshold      int
	ExtremeScoreThreshold int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so callers still start when .env is absent.
	_ = godotenv.Load()

	def := evalfmt.DefaultConfig()
	return Config{
		NeutralThreshold:      envIntOr("NEUTRAL_THRESHOLD", def.NeutralThreshold),
		ExtremeScoreThreshold: envIntOr("EXTREME_SCORE_THRESHOLD", def.ExtremeScoreThreshold),
	}
}

// Validate checks the configuration and reports every violation at once.
func (c Config) Validate() error {
	var problems []string
	if c.NeutralThreshold <= 0 {
		problems = append(problems, "NEUTRAL_THRESHOLD must be positive")
	}
	if c.ExtremeScoreThreshold <= 0 {
		problems = append(problems, "EXTREME_SCORE_THRESHOLD must be positive")
	}
	if c.NeutralThreshold > 0 && c.ExtremeScoreThreshold > 0 &&
		c.NeutralThreshold >= c.ExtremeScoreThreshold {
		problems = append(problems, "NEUTRAL_THRESHOLD must be below EXTREME_SCORE_THRESHOLD")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Formatter returns the evalfmt configuration carried by this config.
func (c Config) Formatter() evalfmt.Config {
	return evalfmt.Config{
		NeutralThreshold:      c.NeutralThreshold,
		ExtremeScoreThreshold: c.ExtremeScoreThreshold,
	}
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
