package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis (optional; empty URL disables the result cache)
	RedisURL string        `mapstructure:"REDIS_URL"`
	CacheTTL time.Duration `mapstructure:"CACHE_TTL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Dataset
	DataFile         string `mapstructure:"DATA_FILE"`
	SyntheticPlayers int    `mapstructure:"SYNTHETIC_PLAYERS"`
	SyntheticDays    int    `mapstructure:"SYNTHETIC_DAYS"`

	// Analysis
	RiskThreshold     float64 `mapstructure:"RISK_THRESHOLD"`
	DefaultWindowDays int     `mapstructure:"DEFAULT_WINDOW_DAYS"`
	RollingWindow     int     `mapstructure:"ROLLING_WINDOW"`

	// Readiness scoring
	ScoreWeightLatest      float64 `mapstructure:"SCORE_WEIGHT_LATEST"`
	ScoreWeightRecentAvg   float64 `mapstructure:"SCORE_WEIGHT_RECENT_AVG"`
	ScoreWeightTrend       float64 `mapstructure:"SCORE_WEIGHT_TREND"`
	ScoreWeightVariability float64 `mapstructure:"SCORE_WEIGHT_VARIABILITY"`
	ScoreWeightRiskDays    float64 `mapstructure:"SCORE_WEIGHT_RISK_DAYS"`
	ScoreVariabilityScale  float64 `mapstructure:"SCORE_VARIABILITY_SCALE"`

	// Squad selection, e.g. "GK:1,DEF:4,MID:4,FWD:2"
	Formation string `mapstructure:"FORMATION"`

	// Upload rate limiting (requests per minute)
	UploadRateLimit int `mapstructure:"UPLOAD_RATE_LIMIT"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("DATA_FILE", "data/emboss.csv")
	viper.SetDefault("SYNTHETIC_PLAYERS", 20)
	viper.SetDefault("SYNTHETIC_DAYS", 90)
	viper.SetDefault("RISK_THRESHOLD", 0.0)
	viper.SetDefault("DEFAULT_WINDOW_DAYS", 30) // 0 means all history
	viper.SetDefault("ROLLING_WINDOW", 7)

	// Scoring weights sum to 1.0; the scorer renormalizes if overridden values do not
	viper.SetDefault("SCORE_WEIGHT_LATEST", 0.35)
	viper.SetDefault("SCORE_WEIGHT_RECENT_AVG", 0.30)
	viper.SetDefault("SCORE_WEIGHT_TREND", 0.15)
	viper.SetDefault("SCORE_WEIGHT_VARIABILITY", 0.10)
	viper.SetDefault("SCORE_WEIGHT_RISK_DAYS", 0.10)
	viper.SetDefault("SCORE_VARIABILITY_SCALE", 0.5)

	viper.SetDefault("FORMATION", "GK:1,DEF:4,MID:4,FWD:2")
	viper.SetDefault("UPLOAD_RATE_LIMIT", 10)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// DefaultWindow renders the configured analysis window for
// models.ParseWindow; 0 parses as all history.
func (c *Config) DefaultWindow() string {
	return strconv.Itoa(c.DefaultWindowDays)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
