package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr      string
	DataDir   string
	DBPath    string
	StaticDir string
	LogLevel  string

	// Per-client admission quota.
	RateLimit  int
	RateWindow time.Duration

	// Upload surface.
	MaxUpload string

	// Extraction provider defaults. The provider API key always comes
	// from the request, never from configuration.
	AIProvider       string
	AIModel          string
	AIBaseURL        string
	AICallsPerMinute int

	SweepInterval time.Duration
}

func Load() (Config, error) {
	cfg := Config{
		Addr:          envOr("CHATSCAN_ADDR", ":8080"),
		DataDir:       envOr("CHATSCAN_DATA_DIR", "data"),
		StaticDir:     envOr("CHATSCAN_STATIC_DIR", detectStaticDir()),
		LogLevel:      envOr("CHATSCAN_LOG_LEVEL", "info"),
		MaxUpload:     envOr("CHATSCAN_MAX_UPLOAD", "16M"),
		AIProvider:    envOr("CHATSCAN_AI_PROVIDER", "gemini"),
		AIModel:       os.Getenv("CHATSCAN_AI_MODEL"),
		AIBaseURL:     os.Getenv("CHATSCAN_AI_BASE_URL"),
	}

	cfg.DBPath = os.Getenv("CHATSCAN_DB_PATH")
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "chatscan.db")
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)

	var err error
	if cfg.RateLimit, err = envInt("CHATSCAN_RATE_LIMIT", 10); err != nil {
		return Config{}, err
	}
	if cfg.RateWindow, err = envDuration("CHATSCAN_RATE_WINDOW", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.AICallsPerMinute, err = envInt("CHATSCAN_AI_CALLS_PER_MINUTE", 30); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval, err = envDuration("CHATSCAN_SWEEP_INTERVAL", 10*time.Minute); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
