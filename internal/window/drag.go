package window

// Drag converts pointer motion into a horizontal item offset, the terminal
// stand-in for touch/mouse drag scrolling on narrow and medium layouts.
type Drag struct {
	active      bool
	startX      int
	startOffset int
	cellWidth   int
}

// Begin starts a drag at column x from offset. It refuses on the wide layout,
// which pages with buttons only.
func (d *Drag) Begin(layout Layout, x, offset, cellWidth int) bool {
	if layout == Wide {
		return false
	}
	if cellWidth < 1 {
		cellWidth = 1
	}
	d.active = true
	d.startX = x
	d.startOffset = offset
	d.cellWidth = cellWidth
	return true
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// Move returns the offset for pointer column x, clamped to [0, maxOffset].
// Dragging left scrolls forward.
func (d *Drag) Move(x, maxOffset int) int {
	if !d.active {
		return d.startOffset
	}
	walk := (x - d.startX) / d.cellWidth
	offset := d.startOffset - walk
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// End finishes the drag.
func (d *Drag) End() {
	d.active = false
}
