package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings fandom reads from config.toml.
type Config struct {
	APIURL           string
	Team             string
	RequestTimeout   time.Duration
	DonationPageSize int
	IdolPageSize     int
	ChartPageSize    int
	ChartPollEvery   time.Duration
	LogFile          string
}

const (
	defaultConfigPath       = "~/.config/fandom/config.toml"
	defaultAPIURL           = "https://fandom-k-api.vercel.app"
	defaultTeam             = "8-3"
	defaultLogFile          = "~/.local/state/fandom/fandom.log"
	defaultRequestTimeout   = 5 * time.Second
	defaultDonationPageSize = 4
	defaultIdolPageSize     = 16
	defaultChartPageSize    = 10
	defaultChartPollEvery   = 30 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:           defaultAPIURL,
		Team:             defaultTeam,
		RequestTimeout:   defaultRequestTimeout,
		DonationPageSize: defaultDonationPageSize,
		IdolPageSize:     defaultIdolPageSize,
		ChartPageSize:    defaultChartPageSize,
		ChartPollEvery:   defaultChartPollEvery,
		LogFile:          mustExpand(defaultLogFile),
	}
}

// Load locates and parses config.toml, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL                string `toml:"api_url"`
		Team                  string `toml:"team"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		DonationPageSize      int    `toml:"donation_page_size"`
		IdolPageSize          int    `toml:"idol_page_size"`
		ChartPageSize         int    `toml:"chart_page_size"`
		ChartPollSeconds      int    `toml:"chart_poll_seconds"`
		LogFile               string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.Trim(strings.TrimSpace(raw.Team), "/"); v != "" {
		cfg.Team = v
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.DonationPageSize > 0 {
		cfg.DonationPageSize = raw.DonationPageSize
	}
	if raw.IdolPageSize > 0 {
		cfg.IdolPageSize = raw.IdolPageSize
	}
	if raw.ChartPageSize > 0 {
		cfg.ChartPageSize = raw.ChartPageSize
	}
	if raw.ChartPollSeconds > 0 {
		cfg.ChartPollEvery = time.Duration(raw.ChartPollSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	return cfg, nil
}

// LogDir returns the directory holding the log file.
func (c Config) LogDir() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return filepath.Dir(mustExpand(defaultLogFile))
	}
	return filepath.Dir(c.LogFile)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
