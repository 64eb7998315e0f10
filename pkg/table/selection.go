package table

import "slices"

// Selection tracks selected row keys independently of sort, filter, and page
// order.
//
// Keys for rows no longer present in the data set are retained rather than
// pruned: a refetch that briefly drops a row should not silently clear the
// user's selection. Call Prune with the current key set to discard them.
type Selection struct {
	keys map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{keys: make(map[string]struct{})}
}

// Has reports whether the row key is selected.
func (s *Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Toggle flips the selection state of one row key.
func (s *Selection) Toggle(key string) {
	if _, ok := s.keys[key]; ok {
		delete(s.keys, key)
	} else {
		s.keys[key] = struct{}{}
	}
}

// SetAll selects or deselects every given key. The DataTable widget passes
// the keys of the currently visible page for its select-all checkbox.
func (s *Selection) SetAll(keys []string, selected bool) {
	for _, key := range keys {
		if selected {
			s.keys[key] = struct{}{}
		} else {
			delete(s.keys, key)
		}
	}
}

// AllSelected reports whether every given key is selected.
// Returns false for an empty key list.
func (s *Selection) AllSelected(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, key := range keys {
		if !s.Has(key) {
			return false
		}
	}
	return true
}

// Count returns the number of selected keys.
func (s *Selection) Count() int {
	return len(s.keys)
}

// Keys returns the selected keys in sorted order.
func (s *Selection) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for key := range s.keys {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Prune drops selected keys that are not in the current key set.
func (s *Selection) Prune(current []string) {
	present := make(map[string]struct{}, len(current))
	for _, key := range current {
		present[key] = struct{}{}
	}
	for key := range s.keys {
		if _, ok := present[key]; !ok {
			delete(s.keys, key)
		}
	}
}

// Clear deselects everything.
func (s *Selection) Clear() {
	clear(s.keys)
}
