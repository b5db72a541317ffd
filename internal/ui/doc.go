// Package ui provides the Bubble Tea terminal interface for fandom.
//
// # Pages
//
//   - Landing: introduction, enter opens the donation list
//   - List: donation carousel and the monthly chart
//   - My: interested idols and the picker used to add more
//
// Only the active page holds live feeds. Switching pages disposes the old
// page's feed, so a page fetched in flight is dropped when it arrives.
//
// # Carousels
//
// The donation list and the idol picker are both a carousel: a feed.Feed
// paged through a window.Window, with a feed.Sentinel on the last card of the
// derived view. Whenever that card is on screen the next page is requested,
// one request at a time. The picker's derived view is the selection pool's
// View, so committing idols or changing the gender filter reshapes what is
// paged without refetching.
//
// Carousel methods never do I/O. They return the admitted feed.Request and the
// model wraps it in a tea.Cmd; the result comes back as a message tagged with
// the feed id and is applied only if that feed is still mounted.
//
// # Chart
//
// The monthly chart lives in state.Store and is refreshed by the app poller.
// The model reads a snapshot every tick and changes the request (gender tab,
// "show more") through Store.SetRequest, which wakes the poller.
//
// # Overlays
//
//   - ?: key reference (any key closes)
//   - L: tail of the log file with search (/, n, N) and a component filter (c)
//
// # Layout
//
// Widths below 80 columns use the narrow layout, below 120 medium, otherwise
// wide. Cards per page follow window.DonationSizes and window.IdolSizes.
// Narrow and medium layouts also page by mouse drag.
package ui
