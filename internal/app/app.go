package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/fandom/internal/config"
	"github.com/five82/fandom/internal/fandom"
	"github.com/five82/fandom/internal/prefs"
	"github.com/five82/fandom/internal/selection"
	"github.com/five82/fandom/internal/state"
	"github.com/five82/fandom/internal/ui"
)

// Options configure the fandom application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/fandom/prefs.toml
	PollEvery  int    // chart refresh in seconds; zero uses the config value
}

// logLevelEnv selects the file log level (debug, info, warn, error).
const logLevelEnv = "FANDOM_LOG_LEVEL"

// Run boots the fandom TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	client, err := fandom.NewClient(cfg.APIURL, cfg.Team, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := state.NewStore(state.ChartRequest{
		Gender: string(chartGender(userPrefs.Gender)),
		Size:   cfg.ChartPageSize,
	})

	interval := cfg.ChartPollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, client, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Source:    client,
		Store:     store,
		Config:    &cfg,
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		Gender:    userPrefs.Gender,
		PrefsPath: opts.PrefsPath,
		LogFile:   cfg.LogFile,
	}
	return ui.Run(uiOpts)
}

// chartGender picks the chart tab to open on. The chart has no "all" tab.
func chartGender(pref string) selection.Category {
	if selection.ParseCategory(pref) == selection.Male {
		return selection.Male
	}
	return selection.Female
}

// setupLogging points the default logger at path so nothing is written over
// the TUI. The returned func closes the file.
func setupLogging(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	logger := newLogger(f, os.Getenv(logLevelEnv))
	log.SetDefault(logger)
	log.With("component", "app").Info("fandom started", "logFile", path)

	return func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil || level == "" {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
