package feed

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Record is anything with a stable unique identifier.
type Record interface {
	RecordID() int64
}

// Page is one cursor-chained slice of a remote collection. A nil Next marks
// the end of the stream.
type Page[T any] struct {
	Items []T
	Next  *int64
}

// Fetcher performs the single I/O operation a Feed depends on. A nil cursor
// requests the first page.
type Fetcher[T any] func(ctx context.Context, cursor *int64, size int) (Page[T], error)

// Phase is the coarse state of a feed's fetch cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseFailed
	PhaseExhausted
	PhaseDisposed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseExhausted:
		return "exhausted"
	case PhaseDisposed:
		return "disposed"
	default:
		return "idle"
	}
}

var ids atomic.Uint64

// Feed accumulates a cursor-paged collection with at most one fetch in flight.
// It is not safe for concurrent use; all methods except Request.Do are meant to
// run on the owning event loop.
type Feed[T Record] struct {
	id    uint64
	name  string
	fetch Fetcher[T]

	cursor   *int64
	items    []T
	seen     map[int64]struct{}
	loading  bool
	hasNext  bool
	hasError bool
	lastErr  error
	disposed bool
	seq      uint64
}

// New creates an empty feed. name only labels log lines.
func New[T Record](name string, fetch Fetcher[T]) *Feed[T] {
	return &Feed[T]{
		id:      ids.Add(1),
		name:    name,
		fetch:   fetch,
		seen:    make(map[int64]struct{}),
		hasNext: true,
	}
}

// ID distinguishes feed instances so results can be routed to their owner.
func (f *Feed[T]) ID() uint64 { return f.id }

// Request is a fetch that has been admitted by Begin or Retry.
type Request[T Record] struct {
	feed   uint64
	seq    uint64
	cursor *int64
	size   int
	fetch  Fetcher[T]
}

// Feed returns the id of the feed that issued the request.
func (r Request[T]) Feed() uint64 { return r.feed }

// Size is the requested page size.
func (r Request[T]) Size() int { return r.size }

// Result is the outcome of Request.Do, applied with Feed.Complete.
type Result[T Record] struct {
	Page Page[T]
	Err  error

	feed uint64
	seq  uint64
	size int
}

// Feed returns the id of the feed the result belongs to.
func (r Result[T]) Feed() uint64 { return r.feed }

// Do runs the fetch. It is safe to call from any goroutine and never panics:
// a panicking fetcher is reported as an error result.
func (r Request[T]) Do(ctx context.Context) (res Result[T]) {
	res = Result[T]{feed: r.feed, seq: r.seq, size: r.size}
	if r.fetch == nil {
		res.Err = errors.New("feed has no fetcher")
		return res
	}
	defer func() {
		if p := recover(); p != nil {
			res.Page = Page[T]{}
			res.Err = fmt.Errorf("fetch panicked: %v", p)
		}
	}()
	res.Page, res.Err = r.fetch(ctx, cloneCursor(r.cursor), r.size)
	return res
}

// Begin admits a load of size items. It is a no-op (false) while a fetch is in
// flight, once the stream is exhausted, after a failure that has not been
// retried, after Dispose, or for a non-positive size.
func (f *Feed[T]) Begin(size int) (Request[T], bool) {
	if f.disposed || f.loading || !f.hasNext || f.hasError || size <= 0 {
		return Request[T]{}, false
	}
	f.loading = true
	f.hasError = false
	f.lastErr = nil
	f.seq++
	return Request[T]{
		feed:   f.id,
		seq:    f.seq,
		cursor: cloneCursor(f.cursor),
		size:   size,
		fetch:  f.fetch,
	}, true
}

// Retry is the only way out of the failed phase. It clears the error latch and
// then behaves exactly like Begin.
func (f *Feed[T]) Retry(size int) (Request[T], bool) {
	if f.disposed || f.loading || size <= 0 {
		return Request[T]{}, false
	}
	f.hasError = false
	f.lastErr = nil
	return f.Begin(size)
}

// Complete applies a result and reports how many new records were appended.
// ok is false when the result was ignored because the feed was disposed or the
// result does not answer the in-flight request.
func (f *Feed[T]) Complete(res Result[T]) (appended int, ok bool) {
	if f.disposed || !f.loading || res.feed != f.id || res.seq != f.seq {
		return 0, false
	}
	f.loading = false

	logger := log.With("component", "feed", "feed", f.name)
	if res.Err != nil {
		f.hasError = true
		f.lastErr = res.Err
		logger.Warn("page fetch failed", "err", res.Err)
		return 0, true
	}

	for _, item := range res.Page.Items {
		id := item.RecordID()
		if _, dup := f.seen[id]; dup {
			continue
		}
		f.seen[id] = struct{}{}
		f.items = append(f.items, item)
		appended++
	}
	f.cursor = cloneCursor(res.Page.Next)
	if len(res.Page.Items) < res.size || res.Page.Next == nil {
		f.hasNext = false
	}
	logger.Debug("page loaded", "received", len(res.Page.Items), "appended", appended, "total", len(f.items), "hasNext", f.hasNext)
	return appended, true
}

// LoadMore runs Begin, Do and Complete synchronously. It reports whether a
// fetch was issued.
func (f *Feed[T]) LoadMore(ctx context.Context, size int) bool {
	req, ok := f.Begin(size)
	if !ok {
		return false
	}
	f.Complete(req.Do(ctx))
	return true
}

// Dispose detaches the feed from its owner. Results that arrive afterwards are
// dropped and no further fetches are admitted.
func (f *Feed[T]) Dispose() {
	f.disposed = true
}

// Phase reports where the feed is in its fetch cycle.
func (f *Feed[T]) Phase() Phase {
	switch {
	case f.disposed:
		return PhaseDisposed
	case f.loading:
		return PhaseLoading
	case f.hasError:
		return PhaseFailed
	case !f.hasNext:
		return PhaseExhausted
	default:
		return PhaseIdle
	}
}

// Loading reports whether a fetch is in flight.
func (f *Feed[T]) Loading() bool { return f.loading }

// HasNext reports whether the server may have more pages.
func (f *Feed[T]) HasNext() bool { return f.hasNext }

// HasError reports whether the last fetch failed and has not been retried.
func (f *Feed[T]) HasError() bool { return f.hasError }

// Err returns the error from the last failed fetch, or nil.
func (f *Feed[T]) Err() error { return f.lastErr }

// Len returns the number of records fetched so far.
func (f *Feed[T]) Len() int { return len(f.items) }

// Cursor returns a copy of the cursor the next page will be requested with.
func (f *Feed[T]) Cursor() *int64 { return cloneCursor(f.cursor) }

// Items returns a copy of the fetched records in fetch order.
func (f *Feed[T]) Items() []T {
	if len(f.items) == 0 {
		return nil
	}
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

// State is a read-only projection of a feed for rendering.
type State[T Record] struct {
	Items    []T
	Cursor   *int64
	Phase    Phase
	Loading  bool
	HasNext  bool
	HasError bool
	Err      error
}

// Snapshot copies the feed's render state.
func (f *Feed[T]) Snapshot() State[T] {
	return State[T]{
		Items:    f.Items(),
		Cursor:   f.Cursor(),
		Phase:    f.Phase(),
		Loading:  f.loading,
		HasNext:  f.hasNext,
		HasError: f.hasError,
		Err:      f.lastErr,
	}
}

func cloneCursor(c *int64) *int64 {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
