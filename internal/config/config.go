package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Cfg struct {
	App        App
	Database   Database
	Logger     Logger
	OpenAI     OpenAI
	Suite      Suite
	Migrations Migrations
}

type App struct {
	Host string
	Port string
}

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

type Migrations struct {
	Path string
}

type Logger struct {
	Env   string
	Level string
}

type OpenAI struct {
	KeyAI     string
	Model     string
	MaxTokens int
}

// Suite содержит настройки тестового прогона: базовый URL проверяемого
// приложения и дефолтные таймауты обертки действий.
type Suite struct {
	BaseURL         string
	Headless        bool
	ActionTimeout   time.Duration
	NavigateTimeout time.Duration
	TypeDelay       time.Duration
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	cfg := &Cfg{
		App: App{
			Host: env("APP_HOST", "127.0.0.1"),
			Port: env("APP_PORT", "8080"),
		},
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			Name:     os.Getenv("DB_NAME"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
		},
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
		},
		OpenAI: OpenAI{
			KeyAI:     os.Getenv("OPENAI_API_KEY"),
			Model:     env("OPENAI_MODEL", "gpt-4o"),
			MaxTokens: envInt("OPENAI_MAX_TOKENS", 1000),
		},
		Suite: Suite{
			BaseURL:         env("SUITE_BASE_URL", ""),
			Headless:        envBool("PW_HEADLESS"),
			ActionTimeout:   envDuration("SUITE_ACTION_TIMEOUT", 10*time.Second),
			NavigateTimeout: envDuration("SUITE_NAVIGATE_TIMEOUT", 30*time.Second),
			TypeDelay:       envDuration("SUITE_TYPE_DELAY", 100*time.Millisecond),
		},
		Migrations: Migrations{
			Path: env("MIGRATIONS_PATH", "file://migrations"),
		},
	}

	return cfg, nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "true" || v == "1" || v == "yes"
}

func envDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}
