package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fandom/internal/fandom"
	"github.com/five82/fandom/internal/prefs"
	"github.com/five82/fandom/internal/selection"
	"github.com/five82/fandom/internal/state"
)

func newTestModel(t *testing.T, src *fakeSource, store *state.Store) Model {
	t.Helper()
	m := New(Options{
		Source:    src,
		Store:     store,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		LogFile:   filepath.Join(t.TempDir(), "fandom.log"),
	})
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 130, Height: 40})
	return pump(t, next.(Model), cmd)
}

func TestModelLandingToDonations(t *testing.T) {
	src := newFakeSource(10, 0)
	m := newTestModel(t, src, nil)
	if !strings.Contains(m.View(), "Press enter to get started") {
		t.Fatalf("landing page missing call to action")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.page != PageList {
		t.Fatalf("page = %v, want list", m.page)
	}
	// Wide layout shows four donations; the second page is prefetched when
	// the last card comes into view and loading then stops.
	if got := len(m.donations.state().Items); got != 8 {
		t.Fatalf("donations = %d, want 8", got)
	}
	if src.donationCalls != 2 {
		t.Fatalf("donation fetches = %d, want 2", src.donationCalls)
	}
	if !strings.Contains(m.View(), "Donations waiting for support") {
		t.Fatalf("list page missing donations section")
	}

	m = press(t, m, keyRunes("l"))
	if m.donations.win.Page() != 1 {
		t.Fatalf("page = %d, want 1", m.donations.win.Page())
	}
	if got := len(m.donations.state().Items); got != 10 {
		t.Fatalf("donations = %d, want 10", got)
	}
	if m.donations.state().HasNext {
		t.Fatalf("stream should be exhausted")
	}
}

func TestModelDropsResultsForUnmountedPage(t *testing.T) {
	src := newFakeSource(10, 20)
	m := newTestModel(t, src, nil)

	next, staleDonations := m.Update(keyRunes("2"))
	m = next.(Model)
	next, staleIdols := m.Update(keyRunes("3"))
	m = next.(Model)
	next, fresh := m.Update(keyRunes("2"))
	m = next.(Model)

	m = pump(t, m, staleDonations)
	if got := len(m.donations.state().Items); got != 0 {
		t.Fatalf("stale donations applied: %d items", got)
	}
	m = pump(t, m, staleIdols)
	if m.picker.mounted() {
		t.Fatalf("picker mounted on the list page")
	}

	m = pump(t, m, fresh)
	if got := len(m.donations.state().Items); got != 8 {
		t.Fatalf("donations = %d, want 8", got)
	}
}

func TestModelRetryAfterFailedLoad(t *testing.T) {
	src := newFakeSource(10, 0)
	src.failDonations = 1
	m := newTestModel(t, src, nil)

	m = press(t, m, keyRunes("2"))
	st := m.donations.state()
	if !st.HasError || len(st.Items) != 0 {
		t.Fatalf("state = %+v, want failed and empty", st)
	}
	if !strings.Contains(m.View(), "Press r to retry") {
		t.Fatalf("failed feed does not offer retry")
	}

	m = press(t, m, keyRunes("r"))
	st = m.donations.state()
	if st.HasError || len(st.Items) != 8 {
		t.Fatalf("after retry: hasError = %v items = %d", st.HasError, len(st.Items))
	}
}

func TestModelCommitTopsUpPicker(t *testing.T) {
	src := newFakeSource(0, 20)
	m := newTestModel(t, src, nil)

	m = press(t, m, keyRunes("3"))
	if got := m.picker.feed.Len(); got != 16 {
		t.Fatalf("idols = %d, want 16", got)
	}

	m = press(t, m, keyRunes(" "))
	m = press(t, m, keyRunes("j"))
	m = press(t, m, keyRunes(" "))
	if got := m.pool.CheckedLen(); got != 2 {
		t.Fatalf("checked = %d, want 2", got)
	}

	m = press(t, m, keyRunes("a"))
	if got := len(m.pool.Selected()); got != 2 {
		t.Fatalf("selected = %d, want 2", got)
	}
	if m.pool.CheckedLen() != 0 {
		t.Fatalf("checked not cleared by commit")
	}
	if got := m.picker.feed.Len(); got != 18 {
		t.Fatalf("fetched = %d, want 18 after top-up", got)
	}
	if got := len(m.picker.items()); got != 16 {
		t.Fatalf("picker view = %d, want 16", got)
	}
	for _, idol := range m.picker.items() {
		if m.pool.IsSelected(idol.ID) {
			t.Fatalf("selected idol %d still offered", idol.ID)
		}
	}
	if m.notice != "Added 2 idols" {
		t.Fatalf("notice = %q", m.notice)
	}
	if !strings.Contains(m.View(), "My interested idols (2)") {
		t.Fatalf("interested strip not rendered")
	}
}

func TestModelRemoveInterested(t *testing.T) {
	src := newFakeSource(0, 20)
	m := newTestModel(t, src, nil)
	m = press(t, m, keyRunes("3"))
	m = press(t, m, keyRunes(" "))
	m = press(t, m, keyRunes("a"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.section != sectionInterested {
		t.Fatalf("section = %d, want interested", m.section)
	}
	m = press(t, m, keyRunes("x"))
	if len(m.pool.Selected()) != 0 {
		t.Fatalf("remove left %d selected", len(m.pool.Selected()))
	}
	if cur, _ := m.picker.current(); cur.ID != 1 {
		t.Fatalf("removed idol not back in the picker, cursor on %d", cur.ID)
	}
}

func TestModelFilterChangeResetsPicker(t *testing.T) {
	src := newFakeSource(0, 20)
	m := newTestModel(t, src, nil)
	m = press(t, m, keyRunes("3"))
	m = press(t, m, keyRunes("l"))
	if m.picker.win.Page() != 1 {
		t.Fatalf("page = %d, want 1", m.picker.win.Page())
	}
	m = press(t, m, keyRunes(" "))
	if m.pool.CheckedLen() != 1 {
		t.Fatalf("checked = %d, want 1", m.pool.CheckedLen())
	}

	m = press(t, m, keyRunes("g"))
	if m.pool.Filter() != selection.Female {
		t.Fatalf("filter = %q, want female", m.pool.Filter())
	}
	if m.pool.CheckedLen() != 0 {
		t.Fatalf("filter change kept %d checked", m.pool.CheckedLen())
	}
	if m.picker.win.Page() != 0 {
		t.Fatalf("page = %d, want 0", m.picker.win.Page())
	}
	for _, idol := range m.picker.items() {
		if idol.Gender != "female" {
			t.Fatalf("filtered view contains %+v", idol)
		}
	}
	if got := prefs.Load(m.prefsPath).Gender; got != "female" {
		t.Fatalf("saved gender = %q, want female", got)
	}
}

func TestModelChartControls(t *testing.T) {
	store := state.NewStore(state.ChartRequest{Gender: "female", Size: 10})
	next := int64(10)
	store.Update(store.Request(), &fandom.Page[fandom.Idol]{
		Items:      []fandom.Idol{{ID: 1, Name: "Ari", TotalVotes: 30}, {ID: 2, Name: "Bo", TotalVotes: 20}},
		NextCursor: &next,
	}, nil)

	m := newTestModel(t, newFakeSource(4, 0), store)
	m = pump(t, m, fetchSnapshotCmd(store))
	m = press(t, m, keyRunes("2"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.section != sectionChart {
		t.Fatalf("section = %d, want chart", m.section)
	}
	if !strings.Contains(m.View(), "m  show more") {
		t.Fatalf("chart with more entries does not offer show more")
	}

	m = press(t, m, keyRunes("m"))
	if req := store.Request(); req.Size != 20 || req.Gender != "female" {
		t.Fatalf("request = %+v, want female/20", req)
	}

	m = press(t, m, keyRunes("g"))
	if req := store.Request(); req.Size != 10 || req.Gender != "male" {
		t.Fatalf("request = %+v, want male/10", req)
	}
	if m.chart.HasChart || m.chart.HasMore {
		t.Fatalf("gender switch kept the old chart: %+v", m.chart)
	}

	m = press(t, m, keyRunes("m"))
	if req := store.Request(); req.Size != 10 {
		t.Fatalf("show more without more data grew the request to %d", req.Size)
	}
}

func TestModelOverlays(t *testing.T) {
	m := newTestModel(t, newFakeSource(0, 0), nil)

	m = press(t, m, keyRunes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	next, cmd := m.Update(keyRunes("q"))
	m = next.(Model)
	if m.showHelp || cmd != nil {
		t.Fatalf("q should only close help")
	}

	content := "2026/10/18 14:32:15 INFO fandom started\n2026/10/18 14:32:16 WARN chart poll failed component=poller\n"
	if err := os.WriteFile(m.logFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	m = press(t, m, keyRunes("L"))
	if !m.showLogs || len(m.logLines) != 2 {
		t.Fatalf("logs overlay = %v lines = %d", m.showLogs, len(m.logLines))
	}
	_ = m.View()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showLogs {
		t.Fatalf("esc did not close logs")
	}

	_, cmd = m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q returned %T, want tea.QuitMsg", cmd())
	}
}

func TestModelThemeCycleSavesPrefs(t *testing.T) {
	m := newTestModel(t, newFakeSource(0, 0), nil)
	m = press(t, m, keyRunes("T"))
	if m.theme.Name != "Coral" {
		t.Fatalf("theme = %q, want Coral", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Coral" {
		t.Fatalf("saved theme = %q, want Coral", got)
	}
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&fandom.StatusError{Path: "/x", Code: 404, Message: "not found"}, `server said "not found" (HTTP 404)`},
		{&fandom.StatusError{Path: "/x", Code: 502}, "server returned HTTP 502"},
		{os.ErrDeadlineExceeded, "request timed out"},
		{os.ErrNotExist, os.ErrNotExist.Error()},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := describeError(tt.err); got != tt.want {
			t.Errorf("describeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
