package feed

// Sentinel stands in for an intersection observer on the last rendered item.
// It fires at most once per distinct mark while that mark is visible, the same
// way an observer detached and re-attached on every last-item change would.
type Sentinel struct {
	mark   int64
	marked bool
	fired  bool
}

// Observe reports whether a load should be triggered for the element
// identified by mark. Callers usually pass the last item's id.
func (s *Sentinel) Observe(mark int64, visible bool) bool {
	if !s.marked || s.mark != mark {
		s.mark = mark
		s.marked = true
		s.fired = false
	}
	if !visible || s.fired {
		return false
	}
	s.fired = true
	return true
}

// Reset re-arms the sentinel for the current mark.
func (s *Sentinel) Reset() {
	s.fired = false
}
