package window

import "testing"

func TestDragDisabledOnWide(t *testing.T) {
	var d Drag
	if d.Begin(Wide, 10, 0, 4) {
		t.Fatalf("drag started on wide layout")
	}
	if d.Active() {
		t.Fatalf("drag active after refused Begin")
	}
}

func TestDragMovesAndClamps(t *testing.T) {
	var d Drag
	if !d.Begin(Narrow, 40, 2, 10) {
		t.Fatalf("drag refused on narrow layout")
	}
	if got := d.Move(20, 9); got != 4 {
		t.Fatalf("drag left by two cells = %d, want 4", got)
	}
	if got := d.Move(70, 9); got != 0 {
		t.Fatalf("drag right past start = %d, want 0", got)
	}
	if got := d.Move(-200, 9); got != 9 {
		t.Fatalf("drag far left = %d, want clamped 9", got)
	}
	d.End()
	if d.Active() {
		t.Fatalf("drag still active after End")
	}
}
