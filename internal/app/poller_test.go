package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/fandom/internal/fandom"
	"github.com/five82/fandom/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 30 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 30 * time.Second},
		{"negative failures", -1, 30 * time.Second},
		{"one failure", 1, time.Minute},
		{"two failures", 2, 2 * time.Minute},
		{"three failures", 3, 4 * time.Minute},
		{"four failures capped", 4, 5 * time.Minute}, // Would be 8m, capped to 5m
		{"many failures capped", 40, 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

type fakeCharts struct {
	mu      sync.Mutex
	queries []fandom.ChartQuery
	err     error
	idols   []fandom.Idol
	calls   chan struct{}
}

func (f *fakeCharts) FetchChart(_ context.Context, q fandom.ChartQuery) (fandom.Page[fandom.Idol], error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	err, idols := f.err, f.idols
	f.mu.Unlock()
	if f.calls != nil {
		select {
		case f.calls <- struct{}{}:
		default:
		}
	}
	if err != nil {
		return fandom.Page[fandom.Idol]{}, err
	}
	return fandom.Page[fandom.Idol]{Items: idols}, nil
}

func TestRefresh_StoresChart(t *testing.T) {
	store := state.NewStore(state.ChartRequest{Gender: "male", Size: 10})
	src := &fakeCharts{idols: []fandom.Idol{{ID: 1}, {ID: 2}}}

	if err := refresh(context.Background(), store, src); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	snap := store.Snapshot()
	if !snap.HasChart || len(snap.Idols) != 2 {
		t.Fatalf("snapshot = %+v, want 2 idols", snap)
	}
	if len(src.queries) != 1 || src.queries[0].Gender != "male" || src.queries[0].PageSize != 10 {
		t.Fatalf("queries = %+v", src.queries)
	}
}

func TestRefresh_RecordsFailure(t *testing.T) {
	store := state.NewStore(state.ChartRequest{Gender: "female", Size: 10})
	src := &fakeCharts{err: errors.New("down")}

	if err := refresh(context.Background(), store, src); err == nil {
		t.Fatalf("refresh returned nil error")
	}
	snap := store.Snapshot()
	if snap.ConsecutiveFailures != 1 || snap.LastError == nil {
		t.Fatalf("snapshot = %+v, want one recorded failure", snap)
	}
}

func TestStartPoller_WakesOnRequestChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := state.NewStore(state.ChartRequest{Gender: "female", Size: 10})
	src := &fakeCharts{calls: make(chan struct{}, 1)}
	StartPoller(ctx, store, src, time.Hour)

	waitCall := func() {
		t.Helper()
		select {
		case <-src.calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("poller did not fetch")
		}
	}
	waitCall()
	store.SetRequest(state.ChartRequest{Gender: "female", Size: 20})
	waitCall()

	src.mu.Lock()
	defer src.mu.Unlock()
	last := src.queries[len(src.queries)-1]
	if last.PageSize != 20 {
		t.Fatalf("last query size = %d, want 20", last.PageSize)
	}
}
