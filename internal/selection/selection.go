package selection

// Tracker keeps track of which rows are checked. "All" is tracked apart
// from the individual rows so that a row displays as checked when either
// applies
type Tracker[Key comparable] struct {
	checked map[Key]bool
	all     bool
}

// Make returns a new, empty Tracker
func Make[Key comparable]() *Tracker[Key] {
	return &Tracker[Key]{
		checked: map[Key]bool{},
	}
}

// Toggle flips the membership of a single row and returns its new state.
// Unchecking a row also clears "all", since it no longer holds
func (t *Tracker[Key]) Toggle(k Key) bool {
	if t.checked[k] {
		delete(t.checked, k)
		t.all = false
		return false
	}
	t.checked[k] = true
	return true
}

// SetAll checks every provided key, or clears the selection entirely
func (t *Tracker[Key]) SetAll(checked bool, keys []Key) {
	t.all = checked
	t.checked = map[Key]bool{}
	if !checked {
		return
	}
	for _, k := range keys {
		t.checked[k] = true
	}
}

// IsChecked reports whether a row displays as checked
func (t *Tracker[Key]) IsChecked(k Key) bool {
	return t.all || t.checked[k]
}

// All reports whether "all" is checked
func (t *Tracker[_]) All() bool {
	return t.all
}

// Len returns the number of individually checked rows
func (t *Tracker[_]) Len() int {
	return len(t.checked)
}

// Reset clears "all" and every checked row
func (t *Tracker[Key]) Reset() {
	t.SetAll(false, nil)
}
