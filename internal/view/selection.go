// Package view holds per-screen interaction state: the active query and the
// record shown in the detail dialog.
package view

// Selection tracks the record opened in a screen's detail dialog. The zero
// value has nothing selected and the dialog closed.
type Selection[T any] struct {
	selected *T
	open     bool
}

// Select makes rec the selected record and opens the dialog. Selecting the
// same record twice leaves the same state.
func (s *Selection[T]) Select(rec T) {
	s.selected = &rec
	s.open = true
}

// Close hides the dialog. The selected record is kept.
func (s *Selection[T]) Close() {
	s.open = false
}

// Selected returns the selected record, if any.
func (s *Selection[T]) Selected() (T, bool) {
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

func (s *Selection[T]) DialogOpen() bool {
	return s.open
}
