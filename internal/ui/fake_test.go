package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fandom/internal/fandom"
)

// fakeSource serves in-memory collections with offset cursors.
type fakeSource struct {
	mu            sync.Mutex
	donations     []fandom.Donation
	idols         []fandom.Idol
	chart         []fandom.Idol
	failDonations int // fail this many donation fetches before succeeding
	donationCalls int
	idolCalls     int
}

func newFakeSource(donations, idols int) *fakeSource {
	src := &fakeSource{}
	for i := 1; i <= donations; i++ {
		src.donations = append(src.donations, fandom.Donation{
			ID:                int64(i),
			Title:             "Campaign",
			Subtitle:          "Subway ad",
			TargetDonation:    1000,
			ReceivedDonations: int64(i * 100),
			Idol:              fandom.Idol{ID: int64(100 + i), Name: "Idol", Gender: "female"},
		})
	}
	for i := 1; i <= idols; i++ {
		gender := "female"
		if i%2 == 0 {
			gender = "male"
		}
		src.idols = append(src.idols, fandom.Idol{ID: int64(i), Name: "Idol", Group: "Group", Gender: gender})
	}
	return src
}

func pageOf[T any](all []T, cursor *int64, size int) fandom.Page[T] {
	offset := 0
	if cursor != nil {
		offset = int(*cursor)
	}
	if offset >= len(all) {
		return fandom.Page[T]{}
	}
	end := min(offset+size, len(all))
	page := fandom.Page[T]{Items: append([]T(nil), all[offset:end]...)}
	if end < len(all) {
		next := int64(end)
		page.NextCursor = &next
	}
	return page
}

func (s *fakeSource) FetchDonations(_ context.Context, q fandom.PageQuery) (fandom.Page[fandom.Donation], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.donationCalls++
	if s.failDonations > 0 {
		s.failDonations--
		return fandom.Page[fandom.Donation]{}, &fandom.StatusError{Path: "/8-3/donations", Code: 500, Message: "boom"}
	}
	return pageOf(s.donations, q.Cursor, q.PageSize), nil
}

func (s *fakeSource) FetchIdols(_ context.Context, q fandom.PageQuery) (fandom.Page[fandom.Idol], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idolCalls++
	return pageOf(s.idols, q.Cursor, q.PageSize), nil
}

func (s *fakeSource) FetchChart(_ context.Context, q fandom.ChartQuery) (fandom.Page[fandom.Idol], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.Gender == "" {
		return fandom.Page[fandom.Idol]{}, errors.New("gender required")
	}
	return pageOf(s.chart, q.Cursor, q.PageSize), nil
}

// pump runs cmd and every command it leads to, feeding messages back into
// the model. It must only be used with commands that do not sleep.
func pump(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatalf("command loop did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		next, nc := m.Update(msg)
		m = next.(Model)
		queue = append(queue, nc)
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and pumps whatever it schedules.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return pump(t, next.(Model), cmd)
}
