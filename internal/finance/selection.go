package finance

// Selection is the row-selection state for the reminder table, kept as an
// explicit value independent of the filter state. Clearing the selection
// when filters change is a deliberate call at the handler site, not a hidden
// coupling here.
type Selection struct {
	ids   []string
	index map[string]int
}

// NewSelection builds a selection over the given ids, keeping order and
// dropping duplicates.
func NewSelection(ids ...string) Selection {
	s := Selection{index: map[string]int{}}
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = len(s.ids)
		s.ids = append(s.ids, id)
	}
	return s
}

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s Selection) Count() int { return len(s.ids) }

func (s Selection) IsSelected(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Toggle returns a new selection with id added or, if already present,
// removed.
func (s Selection) Toggle(id string) Selection {
	if !s.IsSelected(id) {
		return NewSelection(append(s.IDs(), id)...)
	}
	kept := make([]string, 0, len(s.ids)-1)
	for _, v := range s.ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return NewSelection(kept...)
}

// ToggleAll selects every id in items, or clears when everything is already
// selected.
func (s Selection) ToggleAll(items []string) Selection {
	if s.AllSelected(items) {
		return NewSelection()
	}
	return NewSelection(items...)
}

func (s Selection) Clear() Selection { return NewSelection() }

// AllSelected reports whether every item is selected (false for an empty list).
func (s Selection) AllSelected(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, id := range items {
		if !s.IsSelected(id) {
			return false
		}
	}
	return true
}

// PartiallySelected reports a non-empty selection that does not cover items.
func (s Selection) PartiallySelected(items []string) bool {
	return s.Count() > 0 && !s.AllSelected(items)
}
