package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the server. It is loaded once at
// startup and passed around as an immutable value.
type Config struct {
	Env      string
	Server   ServerConfig
	Store    StoreConfig
	LLM      LLMConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Learning LearningConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port        int
	ReadTimeout time.Duration
	// WriteTimeout is derived from the LLM timeout plus headroom so a slow
	// generation is never cut off by the HTTP layer.
	WriteTimeout time.Duration
}

type StoreConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type LLMConfig struct {
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type AuthConfig struct {
	SigningSecret string
	SessionTTL    time.Duration
}

// LearningConfig controls the adaptive level engine and quiz generation.
type LearningConfig struct {
	LevelUpThreshold         float64
	LevelDownThreshold       float64
	MinQuizzesForLevelChange int
	DefaultQuizQuestions     int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads configuration from an optional yaml file and the
// environment. Environment variables always win.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env-only deployments are fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:        viper.GetInt("server_port"),
			ReadTimeout: viper.GetDuration("server_read_timeout_seconds") * time.Second,
		},
		Store: StoreConfig{
			URI:      viper.GetString("store_uri"),
			Database: viper.GetString("store_database"),
			Timeout:  viper.GetDuration("store_timeout_seconds") * time.Second,
		},
		LLM: LLMConfig{
			BaseURL:     viper.GetString("llm_base_url"),
			Model:       viper.GetString("llm_model"),
			Timeout:     viper.GetDuration("llm_timeout_seconds") * time.Second,
			Temperature: viper.GetFloat64("llm_temperature"),
			MaxTokens:   viper.GetInt("llm_max_tokens"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis_address"),
			Password: viper.GetString("redis_password"),
			DB:       viper.GetInt("redis_db"),
		},
		Auth: AuthConfig{
			SigningSecret: viper.GetString("signing_secret"),
			SessionTTL:    time.Duration(viper.GetInt("session_ttl_days")) * 24 * time.Hour,
		},
		Learning: LearningConfig{
			LevelUpThreshold:         viper.GetFloat64("level_up_threshold"),
			LevelDownThreshold:       viper.GetFloat64("level_down_threshold"),
			MinQuizzesForLevelChange: viper.GetInt("min_quizzes_for_level_change"),
			DefaultQuizQuestions:     viper.GetInt("default_quiz_questions"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("log_level"),
			Env:   viper.GetString("env"),
		},
	}

	// The quiz orchestrator may wait out a full LLM call, so the write
	// deadline is LLM timeout plus headroom.
	cfg.Server.WriteTimeout = cfg.LLM.Timeout + 30*time.Second

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("env", "development")
	viper.SetDefault("server_port", 8080)
	viper.SetDefault("server_read_timeout_seconds", 20)

	viper.SetDefault("store_uri", "mongodb://localhost:27017")
	viper.SetDefault("store_database", "EnglishLearning")
	viper.SetDefault("store_timeout_seconds", 10)

	viper.SetDefault("llm_base_url", "http://127.0.0.1:11434")
	viper.SetDefault("llm_model", "gemma2:2b")
	viper.SetDefault("llm_timeout_seconds", 180)
	viper.SetDefault("llm_temperature", 0.7)
	viper.SetDefault("llm_max_tokens", 2000)

	viper.SetDefault("session_ttl_days", 7)

	viper.SetDefault("level_up_threshold", 75)
	viper.SetDefault("level_down_threshold", 50)
	viper.SetDefault("min_quizzes_for_level_change", 3)
	viper.SetDefault("default_quiz_questions", 4)

	viper.SetDefault("log_level", "info")
}

func (c *Config) validate() error {
	if c.Auth.SigningSecret == "" {
		return fmt.Errorf("SIGNING_SECRET must be set")
	}
	if len(c.Auth.SigningSecret) < 32 {
		return fmt.Errorf("SIGNING_SECRET must be at least 32 bytes, got %d", len(c.Auth.SigningSecret))
	}
	if c.Learning.MinQuizzesForLevelChange < 1 {
		return fmt.Errorf("MIN_QUIZZES_FOR_LEVEL_CHANGE must be positive")
	}
	if c.Learning.LevelDownThreshold >= c.Learning.LevelUpThreshold {
		return fmt.Errorf("LEVEL_DOWN_THRESHOLD (%v) must be below LEVEL_UP_THRESHOLD (%v)",
			c.Learning.LevelDownThreshold, c.Learning.LevelUpThreshold)
	}
	if c.Learning.DefaultQuizQuestions < 1 || c.Learning.DefaultQuizQuestions > 10 {
		return fmt.Errorf("DEFAULT_QUIZ_QUESTIONS must be between 1 and 10")
	}
	return nil
}

// AvailableModels is the curated list of models the inference runtime is
// known to serve. Exposed through /api/model-info/.
func AvailableModels() []string {
	return []string{
		"llama3.1:8b",
		"llama3.2:3b",
		"gemma2:2b",
		"llama3.2:1b",
		"mistral:7b",
		"qwen2:7b",
		"phi3:mini",
	}
}
