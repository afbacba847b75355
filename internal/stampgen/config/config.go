package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

// Source names accepted by GeneratorConfig.Source.
const (
	SourceMonotonic = "monotonic"
	SourceWall      = "wall"
	SourceRedis     = "redis"
)

// Config holds stamp generator configuration
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Redis     RedisConfig     `json:"redis" yaml:"redis"`
	Logger    logger.Config   `json:"logger" yaml:"logger"`
}

type GeneratorConfig struct {
	Source           string `json:"source" yaml:"source"` // "monotonic", "wall", "redis"
	Count            int    `json:"count" yaml:"count"`
	Workers          int    `json:"workers" yaml:"workers"`
	FallbackToWall   bool   `json:"fallback_to_wall" yaml:"fallback_to_wall"`
	FailureThreshold int    `json:"failure_threshold" yaml:"failure_threshold"`
	ReopenTimeoutMS  int    `json:"reopen_timeout_ms" yaml:"reopen_timeout_ms"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Source:  SourceMonotonic,
			Count:   10,
			Workers: 1,
		},
		Redis: RedisConfig{
			Addr: "127.0.0.1:6379",
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		env := os.Getenv("ENV")
		if env == "" {
			env = "local"
		}
		configPath = filepath.Join("internal", "stampgen", "config", env+".yaml")
	}

	cfg := DefaultConfig()

	parsedCfg, err := conflux.ParseConfig(configPath, cfg)
	if err != nil {
		log.Printf("Config file not found or failed to parse, using defaults if file not specified. Path: %s, Error: %v", configPath, err)
		if path != "" {
			return nil, err
		}
		return cfg, nil
	}

	return parsedCfg, nil
}

// MustLoad loads configuration or exits on error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
