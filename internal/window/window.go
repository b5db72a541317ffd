package window

// Layout is the breakpoint class of the current terminal width.
type Layout int

const (
	Narrow Layout = iota
	Medium
	Wide
)

// Terminal width thresholds, in columns.
const (
	// NarrowBelow is the width below which the narrow layout is used.
	NarrowBelow = 80

	// MediumBelow is the width below which the medium layout is used.
	MediumBelow = 120
)

func (l Layout) String() string {
	switch l {
	case Narrow:
		return "narrow"
	case Medium:
		return "medium"
	default:
		return "wide"
	}
}

// Classify maps a terminal width onto a layout.
func Classify(width int) Layout {
	switch {
	case width < NarrowBelow:
		return Narrow
	case width < MediumBelow:
		return Medium
	default:
		return Wide
	}
}

// Sizes holds items-per-page for each layout.
type Sizes struct {
	Narrow int
	Medium int
	Wide   int
}

// DonationSizes are the carousel sizes for the donation list.
var DonationSizes = Sizes{Narrow: 1, Medium: 2, Wide: 4}

// IdolSizes are the grid sizes for the idol picker.
var IdolSizes = Sizes{Narrow: 3, Medium: 6, Wide: 8}

// For returns the page size for l, never less than one.
func (s Sizes) For(l Layout) int {
	n := s.Wide
	switch l {
	case Narrow:
		n = s.Narrow
	case Medium:
		n = s.Medium
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Move describes what Next or Prev did.
type Move int

const (
	// MoveNone means the index was already at the boundary.
	MoveNone Move = iota
	// MoveChanged means the page index changed.
	MoveChanged
	// MoveNeedsData means the last local page is showing and more data exists
	// upstream; the caller should load more instead.
	MoveNeedsData
)

// Window tracks which page of a derived list is visible. It does NOT render.
type Window struct {
	sizes  Sizes
	layout Layout
	page   int
	total  int
}

// New creates a Window starting on the wide layout.
func New(sizes Sizes) *Window {
	return &Window{sizes: sizes, layout: Wide}
}

// Layout returns the current breakpoint class.
func (w *Window) Layout() Layout { return w.layout }

// PerPage returns the number of items shown per page.
func (w *Window) PerPage() int { return w.sizes.For(w.layout) }

// Page returns the zero-based page index.
func (w *Window) Page() int { return w.page }

// Total returns the length of the list being paged.
func (w *Window) Total() int { return w.total }

// Pages returns the number of pages, zero for an empty list.
func (w *Window) Pages() int {
	if w.total <= 0 {
		return 0
	}
	per := w.PerPage()
	return (w.total + per - 1) / per
}

// Resize reclassifies the layout for width and clamps the page index.
// Returns true if the layout changed.
func (w *Window) Resize(width int) bool {
	next := Classify(width)
	changed := next != w.layout
	w.layout = next
	w.clamp()
	return changed
}

// SetTotal updates the list length and clamps the page index. An empty list
// resets to the first page.
func (w *Window) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	w.total = n
	w.clamp()
}

// SetPage jumps to page p, clamped into range.
func (w *Window) SetPage(p int) {
	w.page = p
	w.clamp()
}

// Reset returns to the first page.
func (w *Window) Reset() {
	w.page = 0
}

// Next advances one page. On the last page it reports MoveNeedsData when
// hasMore is set rather than clamping silently.
func (w *Window) Next(hasMore bool) Move {
	if w.page+1 < w.Pages() {
		w.page++
		return MoveChanged
	}
	if hasMore {
		return MoveNeedsData
	}
	return MoveNone
}

// Prev retreats one page, stopping at the first.
func (w *Window) Prev() Move {
	if w.page <= 0 {
		return MoveNone
	}
	w.page--
	return MoveChanged
}

// CanPrev reports whether Prev would move.
func (w *Window) CanPrev() bool { return w.page > 0 }

// CanNext reports whether Next would move or ask for more data.
func (w *Window) CanNext(hasMore bool) bool {
	return w.page+1 < w.Pages() || hasMore
}

// Bounds returns the [start, end) slice bounds of the visible page.
func (w *Window) Bounds() (start, end int) {
	if w.total == 0 {
		return 0, 0
	}
	per := w.PerPage()
	start = w.page * per
	end = min(start+per, w.total)
	return start, end
}

// Contains reports whether index idx of the list is on the visible page.
func (w *Window) Contains(idx int) bool {
	start, end := w.Bounds()
	return idx >= start && idx < end
}

func (w *Window) clamp() {
	pages := w.Pages()
	if pages == 0 {
		w.page = 0
		return
	}
	if w.page < 0 {
		w.page = 0
	}
	if w.page > pages-1 {
		w.page = pages - 1
	}
}
