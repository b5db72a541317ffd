// Package window decides which slice of a derived list is on screen.
//
// # Layouts
//
// Terminal width maps onto three layouts:
//
//   - Narrow: below 80 columns
//   - Medium: below 120 columns
//   - Wide: everything else
//
// Sizes gives the cards per page for each layout. DonationSizes is 1/2/4 and
// IdolSizes is 3/6/8.
//
// # Paging
//
// A Window holds the page index and the total length of the derived view. The
// owner calls SetTotal whenever the view changes and Resize on every
// tea.WindowSizeMsg; both clamp the page into range. Rendering only reads
// Bounds.
//
// Next returns MoveNeedsData when the last local page is showing and the feed
// reports more upstream, so the caller loads instead of paging:
//
//	switch win.Next(feed.HasNext()) {
//	case window.MoveChanged:
//		// render the new page
//	case window.MoveNeedsData:
//		// start a fetch
//	}
//
// # Drag
//
// Drag turns mouse motion into an item offset on the narrow and medium layouts.
// The wide layout pages with keys and buttons only.
package window
