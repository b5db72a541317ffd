package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/fandom/internal/fandom"
	"github.com/five82/fandom/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
)

// ChartSource is the subset of the API the poller needs.
type ChartSource interface {
	FetchChart(ctx context.Context, query fandom.ChartQuery) (fandom.Page[fandom.Idol], error)
}

// StartPoller launches a background goroutine that keeps the monthly chart in
// the store fresh. It returns immediately. Failures back off exponentially and
// a request change on the store triggers an immediate refresh.
func StartPoller(ctx context.Context, store *state.Store, source ChartSource, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	logger := log.With("component", "poller")
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			refresh(ctx, store, source)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			if wait != interval {
				logger.Debug("backing off", "wait", wait)
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(wait)

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			case <-store.Wake():
			}
		}
	}()
}

// calculateBackoff doubles base once per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, source ChartSource) error {
	req := store.Request()
	page, err := source.FetchChart(ctx, fandom.ChartQuery{
		PageQuery: fandom.PageQuery{PageSize: req.Size},
		Gender:    req.Gender,
	})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(req, nil, err)
		log.With("component", "poller").Warn("chart poll failed", "gender", req.Gender, "err", err)
		return err
	}
	store.Update(req, &page, nil)
	return nil
}
