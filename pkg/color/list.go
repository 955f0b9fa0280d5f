package color

import "errors"

// Entry pairs a parsed color with the exact text it was parsed from.
type Entry struct {
	Color Color
	Text  string
}

// NewEntry parses s and keeps s for display.
func NewEntry(s string) (Entry, error) {
	c, err := Parse(s)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Color: c, Text: s}, nil
}

// ErrEmptyList is returned when a list would contain no colors.
var ErrEmptyList = errors.New("no colors provided")

// List is the fixed, non-empty sequence of colors for a session.
// It cannot be modified after NewList returns.
type List struct {
	entries []Entry
}

// NewList parses every input in order and stops at the first failure.
func NewList(inputs []string) (List, error) {
	if len(inputs) == 0 {
		return List{}, ErrEmptyList
	}
	entries := make([]Entry, 0, len(inputs))
	for _, in := range inputs {
		e, err := NewEntry(in)
		if err != nil {
			return List{}, err
		}
		entries = append(entries, e)
	}
	return List{entries: entries}, nil
}

// Len returns the number of entries.
func (l List) Len() int {
	return len(l.entries)
}

// At returns the entry at index i. It panics when i is out of range.
func (l List) At(i int) Entry {
	return l.entries[i]
}

// Entries returns a copy of the entries.
func (l List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
