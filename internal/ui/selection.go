package ui

import (
	"sort"

	"github.com/samber/lo"
)

// selection tracks the single highlighted song plus a marked set used
// only for bulk removal. The two are independent: marking never moves
// the highlight, but selecting replaces the marked set.
type selection struct {
	index  int // -1 when nothing is selected
	marked map[int]struct{}
}

func newSelection() *selection {
	return &selection{
		index:  -1,
		marked: make(map[int]struct{}),
	}
}

// Index returns the highlighted index, -1 for none.
func (s *selection) Index() int { return s.index }

// Select highlights index i and replaces the marked set with just i.
func (s *selection) Select(i int) {
	s.index = i
	s.marked = map[int]struct{}{i: {}}
}

// ToggleMark flips membership of i in the marked set without touching
// the highlight.
func (s *selection) ToggleMark(i int) {
	if _, ok := s.marked[i]; ok {
		delete(s.marked, i)
	} else {
		s.marked[i] = struct{}{}
	}
}

// Marked returns the marked indices in ascending order.
func (s *selection) Marked() []int {
	indices := lo.Keys(s.marked)
	sort.Ints(indices)
	return indices
}

// IsMarked reports whether i is in the marked set.
func (s *selection) IsMarked(i int) bool {
	_, ok := s.marked[i]
	return ok
}

// Next moves the highlight forward through a list of n songs, wrapping
// to the start. From an unselected state it picks the first song.
func (s *selection) Next(n int) int {
	if n == 0 {
		return s.index
	}
	switch {
	case s.index < 0:
		s.index = 0
	case s.index >= n-1:
		s.index = 0
	default:
		s.index++
	}
	return s.index
}

// Previous moves the highlight backward, wrapping to the end. From an
// unselected state it picks the last song.
func (s *selection) Previous(n int) int {
	if n == 0 {
		return s.index
	}
	switch {
	case s.index < 0:
		s.index = n - 1
	case s.index == 0:
		s.index = n - 1
	default:
		s.index--
	}
	return s.index
}

// AdvanceOrStop implements end-of-track auto-advance: move to the next
// song, or report false at the end of the list instead of wrapping.
func (s *selection) AdvanceOrStop(n int) (int, bool) {
	if n == 0 {
		return -1, false
	}
	if s.index < 0 {
		s.index = 0
		return s.index, true
	}
	if s.index < n-1 {
		s.index++
		return s.index, true
	}
	return s.index, false
}

// Reset clears both the highlight and the marked set, used after the
// song list changes underneath the indices.
func (s *selection) Reset() {
	s.index = -1
	s.marked = make(map[int]struct{})
}

// Clamp keeps the highlight valid against a list of n songs.
func (s *selection) Clamp(n int) {
	if s.index >= n {
		s.index = n - 1
	}
	if n == 0 {
		s.index = -1
	}
}
