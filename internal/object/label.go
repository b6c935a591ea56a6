package object

import (
	"fmt"
	"sort"
)

// LabelID identifies a well-known text label.
type LabelID int

const (
	LabelHealth   LabelID = iota // Remaining health, top right
	LabelGameOver                // End-of-game overlay
)

// Label is a piece of text placed in world coordinates.
// The renderer decides how FontSize maps onto its output.
type Label struct {
	Text     string
	X, Y     float64
	FontSize float64
}

// DefaultFontSize is used for labels created without an explicit size.
const DefaultFontSize = 30

// SetLabel creates or replaces a label and returns it.
func (s *Scene) SetLabel(id LabelID, l Label) *Label {
	if l.FontSize == 0 {
		l.FontSize = DefaultFontSize
	}
	s.labels[id] = &l
	return &l
}

// Label looks up a label by id.
func (s *Scene) Label(id LabelID) (*Label, bool) {
	l, ok := s.labels[id]
	return l, ok
}

// MustLabel looks up a label and panics if it does not exist.
func (s *Scene) MustLabel(id LabelID) *Label {
	l, ok := s.labels[id]
	if !ok {
		panic(fmt.Sprintf("object: no label with id %d", id))
	}
	return l
}

// LabelIDs returns the ids of all labels in ascending order.
func (s *Scene) LabelIDs() []LabelID {
	ids := make([]LabelID, 0, len(s.labels))
	for id := range s.labels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
