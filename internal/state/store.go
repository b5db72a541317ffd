package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/fandom/internal/fandom"
)

// ChartRequest selects which monthly chart the poller keeps fresh.
type ChartRequest struct {
	Gender string
	Size   int
}

// Snapshot represents the latest chart data available to the UI.
type Snapshot struct {
	Request             ChartRequest
	Idols               []fandom.Idol
	HasChart            bool
	HasMore             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates between the poller and the UI.
type Store struct {
	mu       sync.RWMutex
	request  ChartRequest
	snapshot Snapshot
	wake     chan struct{}
}

// NewStore creates a store that will poll req first.
func NewStore(req ChartRequest) *Store {
	s := &Store{request: req}
	s.snapshot.Request = req
	return s
}

// Request returns the chart the poller should fetch next.
func (s *Store) Request() ChartRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.request
}

// SetRequest changes the chart selection and wakes the poller. Switching
// gender drops the previous gender's data so it is never shown under the new
// heading. Returns false if req is unchanged.
func (s *Store) SetRequest(req ChartRequest) bool {
	s.mu.Lock()
	if req == s.request {
		s.mu.Unlock()
		return false
	}
	if req.Gender != s.request.Gender {
		s.snapshot.Idols = nil
		s.snapshot.HasChart = false
		s.snapshot.HasMore = false
	}
	s.request = req
	s.snapshot.Request = req
	wake := s.wakeLocked()
	s.mu.Unlock()

	select {
	case wake <- struct{}{}:
	default:
	}
	return true
}

// Wake returns a channel that receives when the request changes.
func (s *Store) Wake() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wakeLocked()
}

func (s *Store) wakeLocked() chan struct{} {
	if s.wake == nil {
		s.wake = make(chan struct{}, 1)
	}
	return s.wake
}

// Update records the outcome of fetching req. Results for a request that is no
// longer current are dropped. When err is non-nil the previous data is kept
// but the error is recorded for visibility.
func (s *Store) Update(req ChartRequest, page *fandom.Page[fandom.Idol], err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req != s.request {
		return false
	}

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return true
	}

	if page != nil {
		s.snapshot.Idols = cloneIdols(page.Items)
		s.snapshot.HasChart = true
		s.snapshot.HasMore = page.NextCursor != nil
	} else {
		s.snapshot.Idols = nil
		s.snapshot.HasChart = false
		s.snapshot.HasMore = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Idols = cloneIdols(s.snapshot.Idols)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneIdols(items []fandom.Idol) []fandom.Idol {
	if len(items) == 0 {
		return nil
	}
	dup := make([]fandom.Idol, len(items))
	copy(dup, items)
	return dup
}
