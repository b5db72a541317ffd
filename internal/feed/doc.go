// Package feed accumulates cursor-paged remote collections for the carousels.
//
// # Overview
//
// A Feed owns the items fetched so far, the cursor for the next page and the
// flags that decide whether another page may be requested. It performs no I/O
// itself. Begin admits a load and returns a Request; the caller runs
// Request.Do off the event loop (a tea.Cmd) and hands the Result back to
// Complete on the loop.
//
//	req, ok := f.Begin(pageSize)
//	if ok {
//		return func() tea.Msg { return req.Do(ctx) }
//	}
//	...
//	appended, ok := f.Complete(res)
//
// # Fetch Cycle
//
//   - Idle: a load may be admitted
//   - Loading: one fetch is in flight; Begin refuses
//   - Failed: the last fetch errored; only Retry admits a load
//   - Exhausted: the server returned a short page or no next cursor
//   - Disposed: the owner unmounted; results are dropped
//
// # Result Routing
//
// Every Feed gets a process-unique ID and every admitted Request a sequence
// number. Complete ignores a Result whose feed or sequence does not match the
// in-flight request, so a page that lands after its carousel was remounted
// never touches the new feed.
//
// Records are deduplicated by RecordID. Complete reports how many records were
// new, which can be zero even for a successful page.
//
// # Sentinel
//
// Sentinel stands in for an intersection observer on the last rendered card.
// Observe fires once per distinct mark while the mark is visible; Reset re-arms
// it for the same mark. The carousel re-arms after a retry and after every
// successful page while more pages exist.
package feed
