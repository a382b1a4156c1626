// Package config loads runtime settings from the environment and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EntryStoreSQLite = "sqlite"
	EntryStoreMongo  = "mongo"

	minSecretKeyLength = 32
	maxAnalysisWindow  = 90
)

var (
	ErrInvalidPort           = errors.New("invalid port")
	ErrInsecureSecretKey     = errors.New("insecure secret key")
	ErrInvalidEntryStore     = errors.New("invalid entry store")
	ErrMissingMongoURI       = errors.New("mongo uri is required for the mongo entry store")
	ErrInvalidAnalysisWindow = errors.New("invalid analysis window")
	ErrMissingDBPath         = errors.New("database path is empty")
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port               int    `mapstructure:"PORT"`
	DBPath             string `mapstructure:"DB_PATH"`
	EntryStore         string `mapstructure:"ENTRY_STORE"`
	MongoURI           string `mapstructure:"MONGO_URI"`
	MongoDatabase      string `mapstructure:"MONGO_DATABASE"`
	SecretKey          string `mapstructure:"SECRET_KEY"`
	TimeZone           string `mapstructure:"TZ"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFile            string `mapstructure:"LOG_FILE"`
	AnalysisWindowDays int    `mapstructure:"ANALYSIS_WINDOW_DAYS"`

	Location *time.Location `mapstructure:"-"`
	Warnings []string       `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("DB_PATH", "data/mindguard.db")
	v.SetDefault("ENTRY_STORE", EntryStoreSQLite)
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "mindguard")
	v.SetDefault("SECRET_KEY", "")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("ANALYSIS_WINDOW_DAYS", 14)
}

// Load reads configuration. An explicit configFile must exist; otherwise a
// mindguard.yaml in the working directory is used when present.
func Load(configFile string) (Config, error) {
	v, err := newViper(configFile)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBPath resolves DB_PATH from the same sources as Load without
// validating the rest of the settings, so admin commands run without
// SECRET_KEY.
func LoadDBPath(configFile string) (string, error) {
	v, err := newViper(configFile)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(v.GetString("DB_PATH"))
	if path == "" {
		return "", ErrMissingDBPath
	}
	return path, nil
}

func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("mindguard")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func (cfg *Config) normalize() error {
	cfg.EntryStore = strings.ToLower(strings.TrimSpace(cfg.EntryStore))
	cfg.SecretKey = strings.TrimSpace(cfg.SecretKey)

	location, err := time.LoadLocation(strings.TrimSpace(cfg.TimeZone))
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid TZ %q, falling back to UTC", cfg.TimeZone))
		location = time.UTC
	}
	cfg.Location = location

	return cfg.Validate()
}

func (cfg Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port)
	}
	if err := ValidateSecretKey(cfg.SecretKey); err != nil {
		return err
	}
	switch cfg.EntryStore {
	case EntryStoreSQLite:
	case EntryStoreMongo:
		if strings.TrimSpace(cfg.MongoURI) == "" {
			return ErrMissingMongoURI
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEntryStore, cfg.EntryStore)
	}
	if cfg.AnalysisWindowDays < 1 || cfg.AnalysisWindowDays > maxAnalysisWindow {
		return fmt.Errorf("%w: %d", ErrInvalidAnalysisWindow, cfg.AnalysisWindowDays)
	}
	return nil
}

func ValidateSecretKey(secret string) error {
	if secret == "" {
		return fmt.Errorf("%w: SECRET_KEY is required", ErrInsecureSecretKey)
	}
	if _, placeholder := insecureSecretKeys[strings.ToLower(secret)]; placeholder {
		return fmt.Errorf("%w: SECRET_KEY uses a placeholder value", ErrInsecureSecretKey)
	}
	if len(secret) < minSecretKeyLength {
		return fmt.Errorf("%w: SECRET_KEY must be at least %d characters", ErrInsecureSecretKey, minSecretKeyLength)
	}
	return nil
}

func (cfg Config) ListenAddress() string {
	return fmt.Sprintf(":%d", cfg.Port)
}
