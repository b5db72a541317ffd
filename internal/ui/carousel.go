package ui

import (
	"github.com/five82/fandom/internal/feed"
	"github.com/five82/fandom/internal/window"
)

// carousel pages a feed through a visibility window and asks for the next
// page whenever the last card of the derived view becomes visible. It owns no
// I/O: every method that may start a load returns the admitted request and the
// caller turns it into a command.
type carousel[T feed.Record] struct {
	name     string
	fetch    feed.Fetcher[T]
	derive   func([]T) []T
	pageSize int

	feed     *feed.Feed[T]
	win      *window.Window
	sentinel feed.Sentinel
	drag     window.Drag
	cursor   int
}

func newCarousel[T feed.Record](name string, fetch feed.Fetcher[T], sizes window.Sizes, pageSize int, derive func([]T) []T) *carousel[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &carousel[T]{
		name:     name,
		fetch:    fetch,
		derive:   derive,
		pageSize: pageSize,
		win:      window.New(sizes),
	}
}

// mount starts a fresh feed for the page and schedules the first load.
func (c *carousel[T]) mount(width int) (feed.Request[T], bool) {
	c.unmount()
	c.feed = feed.New(c.name, c.fetch)
	c.sentinel = feed.Sentinel{}
	c.win.Reset()
	c.cursor = 0
	if width > 0 {
		c.win.Resize(width)
	}
	return c.sync()
}

// unmount disposes the feed so late results are dropped.
func (c *carousel[T]) unmount() {
	if c.feed != nil {
		c.feed.Dispose()
		c.feed = nil
	}
	c.drag.End()
}

func (c *carousel[T]) mounted() bool { return c.feed != nil }

// owns reports whether id names the live feed.
func (c *carousel[T]) owns(id uint64) bool {
	return c.feed != nil && c.feed.ID() == id
}

// items returns the derived view of everything fetched so far.
func (c *carousel[T]) items() []T {
	if c.feed == nil {
		return nil
	}
	all := c.feed.Items()
	if c.derive == nil {
		return all
	}
	return c.derive(all)
}

// visible returns the cards on the current page and the view index of the
// first one. It only reads the window; sync owns the total and page.
func (c *carousel[T]) visible() ([]T, int) {
	view := c.items()
	start, end := c.win.Bounds()
	end = min(end, len(view))
	start = min(start, end)
	return view[start:end], start
}

// current returns the card under the cursor.
func (c *carousel[T]) current() (T, bool) {
	var zero T
	view := c.items()
	if c.cursor < 0 || c.cursor >= len(view) {
		return zero, false
	}
	return view[c.cursor], true
}

// sync recomputes paging for the current view and fires the sentinel when the
// last card (or the empty placeholder) is on screen.
func (c *carousel[T]) sync() (feed.Request[T], bool) {
	if c.feed == nil {
		return feed.Request[T]{}, false
	}
	view := c.items()
	c.win.SetTotal(len(view))
	c.clampCursor()

	var mark int64
	visible := true
	if len(view) > 0 {
		mark = view[len(view)-1].RecordID()
		visible = c.win.Contains(len(view) - 1)
	} else {
		// The empty placeholder stands in for the last card.
		mark = -int64(c.feed.Len()) - 1
	}
	if !c.sentinel.Observe(mark, visible) {
		return feed.Request[T]{}, false
	}
	return c.feed.Begin(c.pageSize)
}

func (c *carousel[T]) clampCursor() {
	start, end := c.win.Bounds()
	if end == start {
		c.cursor = 0
		return
	}
	if c.cursor < start {
		c.cursor = start
	}
	if c.cursor >= end {
		c.cursor = end - 1
	}
}

// resize reclassifies the layout for a new terminal width.
func (c *carousel[T]) resize(width int) (feed.Request[T], bool) {
	c.win.Resize(width)
	if c.win.Layout() == window.Wide {
		c.drag.End()
	}
	return c.sync()
}

// next pages forward, loading more when the last local page is showing.
func (c *carousel[T]) next() (feed.Request[T], bool) {
	if c.feed == nil {
		return feed.Request[T]{}, false
	}
	c.win.SetTotal(len(c.items()))
	switch c.win.Next(c.feed.HasNext()) {
	case window.MoveChanged:
		c.cursor, _ = c.win.Bounds()
		return c.sync()
	case window.MoveNeedsData:
		return c.feed.Begin(c.pageSize)
	}
	return feed.Request[T]{}, false
}

// prev pages backward.
func (c *carousel[T]) prev() (feed.Request[T], bool) {
	if c.feed == nil {
		return feed.Request[T]{}, false
	}
	c.win.SetTotal(len(c.items()))
	if c.win.Prev() == window.MoveChanged {
		c.cursor, _ = c.win.Bounds()
	}
	return c.sync()
}

// moveCursor steps the cursor by delta, following it onto neighbouring pages.
func (c *carousel[T]) moveCursor(delta int) (feed.Request[T], bool) {
	if c.feed == nil {
		return feed.Request[T]{}, false
	}
	total := len(c.items())
	if total == 0 {
		return c.sync()
	}
	c.cursor = min(max(c.cursor+delta, 0), total-1)
	c.win.SetTotal(total)
	c.win.SetPage(c.cursor / c.win.PerPage())
	return c.sync()
}

// complete applies a fetch result. Results for another feed are ignored.
func (c *carousel[T]) complete(res feed.Result[T]) (feed.Request[T], bool) {
	if !c.owns(res.Feed()) {
		return feed.Request[T]{}, false
	}
	if _, ok := c.feed.Complete(res); !ok {
		return feed.Request[T]{}, false
	}
	// A page can grow the feed without changing the derived view's last id,
	// so every successful page re-arms the sentinel. Observe still requires
	// the last card to be on screen before another load starts.
	if res.Err == nil && c.feed.HasNext() {
		c.sentinel.Reset()
	}
	return c.sync()
}

// retry clears a failed load and tries the same cursor again.
func (c *carousel[T]) retry() (feed.Request[T], bool) {
	if c.feed == nil {
		return feed.Request[T]{}, false
	}
	req, ok := c.feed.Retry(c.pageSize)
	if ok {
		c.sentinel.Reset()
	}
	return req, ok
}

// loadMore requests size more records regardless of visibility.
func (c *carousel[T]) loadMore(size int) (feed.Request[T], bool) {
	if c.feed == nil {
		return feed.Request[T]{}, false
	}
	return c.feed.Begin(size)
}

// resetPage returns to the first page, used when the derived view changes
// shape (filter change).
func (c *carousel[T]) resetPage() (feed.Request[T], bool) {
	c.win.Reset()
	c.cursor = 0
	return c.sync()
}

// dragBegin starts a pointer drag at column x; cardWidth columns of motion
// move one page.
func (c *carousel[T]) dragBegin(x, cardWidth int) bool {
	return c.drag.Begin(c.win.Layout(), x, c.win.Page(), cardWidth)
}

// dragMove follows the pointer to column x.
func (c *carousel[T]) dragMove(x int) (feed.Request[T], bool) {
	if !c.drag.Active() {
		return feed.Request[T]{}, false
	}
	c.win.SetTotal(len(c.items()))
	page := c.drag.Move(x, max(c.win.Pages()-1, 0))
	if page != c.win.Page() {
		c.win.SetPage(page)
		c.cursor, _ = c.win.Bounds()
	}
	return c.sync()
}

func (c *carousel[T]) dragEnd() { c.drag.End() }

// state exposes the feed's render projection; zero when unmounted.
func (c *carousel[T]) state() feed.State[T] {
	if c.feed == nil {
		return feed.State[T]{}
	}
	return c.feed.Snapshot()
}
