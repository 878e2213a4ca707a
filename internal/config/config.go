package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Card sources accepted in CARD_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
)

type Config struct {
	LogLevel          string
	CardSource        string
	CardsPath         string
	DBPath            string
	RandomSeed        uint64
	FeedbackTTL       time.Duration
	DefaultPlayerName string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is fine.
	_ = godotenv.Load()

	return Config{
		LogLevel:          envOr("LOG_LEVEL", "INFO"),
		CardSource:        strings.ToLower(envOr("CARD_SOURCE", SourceEmbedded)),
		CardsPath:         envOr("CARDS_PATH", ""),
		DBPath:            envOr("DB_PATH", "file:duelo.db"),
		RandomSeed:        uint64(envIntOr("RANDOM_SEED", 0)),
		FeedbackTTL:       time.Duration(envIntOr("FEEDBACK_TTL_MS", 3000)) * time.Millisecond,
		DefaultPlayerName: envOr("DEFAULT_PLAYER_NAME", "Jogador"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	switch c.CardSource {
	case SourceEmbedded:
	case SourceFile:
		if c.CardsPath == "" {
			problems = append(problems, "CARDS_PATH cannot be empty when CARD_SOURCE=file")
		}
	case SourceSQLite:
		if c.DBPath == "" {
			problems = append(problems, "DB_PATH cannot be empty when CARD_SOURCE=sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("CARD_SOURCE %q must be embedded, file or sqlite", c.CardSource))
	}
	if c.FeedbackTTL <= 0 {
		problems = append(problems, "FEEDBACK_TTL_MS must be positive")
	}
	if strings.TrimSpace(c.DefaultPlayerName) == "" {
		problems = append(problems, "DEFAULT_PLAYER_NAME cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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
