// Package state holds the latest monthly chart for the UI.
//
// The poller goroutine writes chart pages into a Store and the Bubble Tea
// program reads Snapshots on its own tick. The Store is guarded by a
// readers-writer lock that is held only while copying, never during network
// I/O or rendering.
//
// # Update Semantics
//
//	// Success: replace the chart
//	store.Update(req, page, nil)
//	→ snapshot.Idols = page.Items
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error: keep the old chart, record the failure
//	store.Update(req, nil, err)
//	→ snapshot.Idols = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// Updates carry the ChartRequest they were fetched for. Once the UI calls
// SetRequest (gender toggle or "more"), results for the previous request are
// dropped instead of overwriting the new selection.
//
// # Waking the Poller
//
// SetRequest sends a coalesced signal on Wake so the poller refreshes
// immediately instead of waiting for the next tick.
//
// Snapshot deep-copies the idol slice and the error value so the UI can hold
// a snapshot across renders without racing the poller.
package state
