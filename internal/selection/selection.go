package selection

// Category is the attribute the pool filters by.
type Category string

const (
	CategoryAll Category = ""
	Female      Category = "female"
	Male        Category = "male"
)

// Categories returns the filter tabs in display order.
func Categories() []Category {
	return []Category{CategoryAll, Female, Male}
}

// ParseCategory maps a stored value onto a known category, defaulting to all.
func ParseCategory(s string) Category {
	switch Category(s) {
	case Female:
		return Female
	case Male:
		return Male
	default:
		return CategoryAll
	}
}

// Label returns the tab title for c.
func (c Category) Label() string {
	switch c {
	case Female:
		return "Female idols"
	case Male:
		return "Male idols"
	default:
		return "All idols"
	}
}

// Next cycles to the following tab.
func (c Category) Next() Category {
	cats := Categories()
	for i, cat := range cats {
		if cat == c {
			return cats[(i+1)%len(cats)]
		}
	}
	return CategoryAll
}

// Matches reports whether a record with the given category key passes c.
func (c Category) Matches(key string) bool {
	return c == CategoryAll || string(c) == key
}

// Item is a record the pool can hold. Membership is by RecordID only.
type Item interface {
	RecordID() int64
	CategoryKey() string
}

// Filter derives the addable view: items passing filter, minus anything in
// selected. It never mutates its inputs.
func Filter[T Item](items []T, selected *Set[T], filter Category) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !filter.Matches(item.CategoryKey()) {
			continue
		}
		if selected != nil && selected.Has(item.RecordID()) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Pool holds the committed and pending selections plus the active filter.
type Pool[T Item] struct {
	filter   Category
	selected *Set[T]
	checked  *Set[T]
}

// New creates an empty pool showing every category.
func New[T Item]() *Pool[T] {
	return &Pool[T]{
		selected: NewSet[T](),
		checked:  NewSet[T](),
	}
}

// Filter returns the active category.
func (p *Pool[T]) Filter() Category { return p.filter }

// SetFilter replaces the active category and clears pending checks. The caller
// owns the page index and resets it alongside.
func (p *Pool[T]) SetFilter(c Category) {
	p.filter = c
	p.checked.Clear()
}

// Check marks r for addition. Returns false if it was already checked.
func (p *Pool[T]) Check(r T) bool { return p.checked.Add(r) }

// Uncheck removes the pending mark for r by id.
func (p *Pool[T]) Uncheck(r T) bool { return p.checked.Delete(r.RecordID()) }

// Toggle flips the pending mark for r and reports the new state.
func (p *Pool[T]) Toggle(r T) bool {
	if p.checked.Delete(r.RecordID()) {
		return false
	}
	p.checked.Add(r)
	return true
}

// IsChecked reports whether id is pending.
func (p *Pool[T]) IsChecked(id int64) bool { return p.checked.Has(id) }

// IsSelected reports whether id has been committed.
func (p *Pool[T]) IsSelected(id int64) bool { return p.selected.Has(id) }

// Commit moves every pending record into the committed set and returns the
// records that were newly committed. It is a no-op when nothing is checked.
func (p *Pool[T]) Commit() []T {
	if p.checked.Len() == 0 {
		return nil
	}
	var added []T
	for _, r := range p.checked.Items() {
		if p.selected.Add(r) {
			added = append(added, r)
		}
	}
	p.checked.Clear()
	return added
}

// Remove drops a committed record, returning it to the addable view.
func (p *Pool[T]) Remove(id int64) bool { return p.selected.Delete(id) }

// View derives the addable view of items under the current filter.
func (p *Pool[T]) View(items []T) []T {
	return Filter(items, p.selected, p.filter)
}

// Reconcile drops pending checks that are not part of view so the checked set
// stays a subset of what is visible.
func (p *Pool[T]) Reconcile(view []T) {
	if p.checked.Len() == 0 {
		return
	}
	keep := make(map[int64]struct{}, len(view))
	for _, r := range view {
		keep[r.RecordID()] = struct{}{}
	}
	for _, r := range p.checked.Items() {
		if _, ok := keep[r.RecordID()]; !ok {
			p.checked.Delete(r.RecordID())
		}
	}
}

// Selected returns committed records in commit order.
func (p *Pool[T]) Selected() []T { return p.selected.Items() }

// Checked returns pending records in check order.
func (p *Pool[T]) Checked() []T { return p.checked.Items() }

// CheckedLen returns the number of pending records.
func (p *Pool[T]) CheckedLen() int { return p.checked.Len() }
