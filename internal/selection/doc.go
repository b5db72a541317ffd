// Package selection holds the state behind the interest picker.
//
// # Sets
//
// A Pool keeps three things:
//
//   - the active Category filter ("" for everyone, female or male)
//   - checked: records marked in the picker but not yet added
//   - selected: records the user has added to their interested list
//
// Membership is always by record id. Set preserves insertion order so the
// interested strip shows idols in the order they were added.
//
// # Derived View
//
// View returns the fetched records that pass the filter and are not already
// selected. It never mutates its input, so the carousel can derive a fresh
// view on every render.
//
//	view := pool.View(feed.Items())
//	pool.Reconcile(view)
//
// Reconcile keeps checked a subset of the view after new pages arrive.
//
// # Transitions
//
//   - SetFilter replaces the category and clears checked
//   - Toggle flips one checked mark
//   - Commit moves every checked record into selected and returns the new ones
//   - Remove returns a selected record to the view
package selection
