package ui

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/fandom/internal/config"
	"github.com/five82/fandom/internal/fandom"
	"github.com/five82/fandom/internal/feed"
	"github.com/five82/fandom/internal/prefs"
	"github.com/five82/fandom/internal/selection"
	"github.com/five82/fandom/internal/state"
	"github.com/five82/fandom/internal/window"
)

// Page represents the active screen.
type Page int

const (
	PageLanding Page = iota
	PageList
	PageMy
)

func (p Page) String() string {
	switch p {
	case PageList:
		return "list"
	case PageMy:
		return "my"
	default:
		return "landing"
	}
}

// Sections within a page. Tab toggles between the two.
const (
	sectionPrimary = iota
	sectionSecondary

	sectionDonations  = sectionPrimary
	sectionChart      = sectionSecondary
	sectionPicker     = sectionPrimary
	sectionInterested = sectionSecondary
)

const chartGrowBy = 10

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    fandom.DataSource
	Store     *state.Store
	Config    *config.Config
	PollTick  time.Duration
	ThemeName string
	Gender    string // default picker filter; "" is all
	PrefsPath string
	LogFile   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	source    fandom.DataSource
	store     *state.Store
	config    *config.Config
	prefsPath string
	logFile   string
	pollTick  time.Duration

	// UI state
	theme   Theme
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	page    Page
	section int
	width   int
	height  int
	ready   bool
	notice  string

	// Donation carousel (list page)
	donations *carousel[fandom.Donation]

	// Monthly chart (list page), fed by the poller
	chart       state.Snapshot
	chartGender selection.Category
	chartSize   int
	lastUpdated time.Time

	// Interest picker (my page)
	pool             *selection.Pool[fandom.Idol]
	picker           *carousel[fandom.Idol]
	interestedCursor int

	// Overlays
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logLines    []string
	logErr      error

	// Log search and filter
	logSearch    textinput.Model
	logSearching bool
	logQuery     *regexp.Regexp
	logQueryText string
	logMatches   []int
	logMatch     int
	logComponent string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = cfg.LogFile
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	pool := selection.New[fandom.Idol]()
	pool.SetFilter(selection.ParseCategory(opts.Gender))

	chartGender := selection.Female
	if selection.ParseCategory(opts.Gender) == selection.Male {
		chartGender = selection.Male
	}
	chartSize := cfg.ChartPageSize
	if opts.Store != nil {
		if req := opts.Store.Request(); req.Size > 0 {
			chartGender = selection.ParseCategory(req.Gender)
			chartSize = req.Size
		}
	}

	m := Model{
		ctx:         ctx,
		source:      opts.Source,
		store:       opts.Store,
		config:      cfg,
		prefsPath:   prefsPath,
		logFile:     logFile,
		pollTick:    pollTick,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		page:        PageLanding,
		pool:        pool,
		chartGender: chartGender,
		chartSize:   chartSize,
		logSearch:   newLogSearchInput(),
	}
	m.donations = newCarousel("donations", donationFetcher(opts.Source), window.DonationSizes, cfg.DonationPageSize, nil)
	m.picker = newCarousel("idols", idolFetcher(opts.Source), window.IdolSizes, cfg.IdolPageSize, pool.View)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spinner.Tick,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateLogViewport()
		cmd := m.resize()
		return m, cmd

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.chart = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case donationsMsg:
		if !m.donations.owns(msg.res.Feed()) {
			log.With("component", "ui").Debug("dropping stale donations page", "feed", msg.res.Feed())
			return m, nil
		}
		req, ok := m.donations.complete(msg.res)
		return m, m.donationCmd(req, ok)

	case idolsMsg:
		if !m.picker.owns(msg.res.Feed()) {
			log.With("component", "ui").Debug("dropping stale idols page", "feed", msg.res.Feed())
			return m, nil
		}
		req, ok := m.picker.complete(msg.res)
		m.pool.Reconcile(m.picker.items())
		return m, m.idolCmd(req, ok)

	case logLinesMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.findLogMatches()
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.logSearching {
		// Cursor blink
		var cmd tea.Cmd
		m.logSearch, cmd = m.logSearch.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLogs {
		return m.renderLogs()
	}

	return m.renderMain()
}

// switchPage unmounts the current page's feed and mounts the next page's.
func (m *Model) switchPage(p Page) tea.Cmd {
	if p == m.page {
		return nil
	}
	switch m.page {
	case PageList:
		m.donations.unmount()
	case PageMy:
		m.picker.unmount()
	}
	log.With("component", "ui").Debug("page change", "from", m.page, "to", p)
	m.page = p
	m.section = sectionPrimary
	m.notice = ""

	switch p {
	case PageList:
		req, ok := m.donations.mount(m.width)
		return m.donationCmd(req, ok)
	case PageMy:
		m.interestedCursor = 0
		req, ok := m.picker.mount(m.width)
		return m.idolCmd(req, ok)
	}
	return nil
}

// resize pushes the terminal width into whichever carousel is mounted.
func (m *Model) resize() tea.Cmd {
	var cmds []tea.Cmd
	if m.donations.mounted() {
		req, ok := m.donations.resize(m.width)
		cmds = append(cmds, m.donationCmd(req, ok))
	}
	if m.picker.mounted() {
		req, ok := m.picker.resize(m.width)
		cmds = append(cmds, m.idolCmd(req, ok))
	}
	return tea.Batch(cmds...)
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.logFile))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

// setChart changes the chart request and wakes the poller.
func (m *Model) setChart(gender selection.Category, size int) tea.Cmd {
	m.chartGender = gender
	m.chartSize = size
	if m.store == nil {
		return nil
	}
	if !m.store.SetRequest(state.ChartRequest{Gender: string(gender), Size: size}) {
		return nil
	}
	return fetchSnapshotCmd(m.store)
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Gender: string(m.pool.Filter())}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.With("component", "ui").Warn("save prefs failed", "path", m.prefsPath, "err", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + pages + chart status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current page.
func (m Model) renderContent() string {
	switch m.page {
	case PageList:
		return m.renderList()
	case PageMy:
		return m.renderMy()
	default:
		return m.renderLanding()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type donationsMsg struct{ res feed.Result[fandom.Donation] }

type idolsMsg struct{ res feed.Result[fandom.Idol] }

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) donationCmd(req feed.Request[fandom.Donation], ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return donationsMsg{res: req.Do(ctx)}
	}
}

func (m Model) idolCmd(req feed.Request[fandom.Idol], ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return idolsMsg{res: req.Do(ctx)}
	}
}

func donationFetcher(src fandom.DataSource) feed.Fetcher[fandom.Donation] {
	return func(ctx context.Context, cursor *int64, size int) (feed.Page[fandom.Donation], error) {
		page, err := src.FetchDonations(ctx, fandom.PageQuery{Cursor: cursor, PageSize: size})
		if err != nil {
			return feed.Page[fandom.Donation]{}, err
		}
		return feed.Page[fandom.Donation]{Items: page.Items, Next: page.NextCursor}, nil
	}
}

func idolFetcher(src fandom.DataSource) feed.Fetcher[fandom.Idol] {
	return func(ctx context.Context, cursor *int64, size int) (feed.Page[fandom.Idol], error) {
		page, err := src.FetchIdols(ctx, fandom.PageQuery{Cursor: cursor, PageSize: size})
		if err != nil {
			return feed.Page[fandom.Idol]{}, err
		}
		return feed.Page[fandom.Idol]{Items: page.Items, Next: page.NextCursor}, nil
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
