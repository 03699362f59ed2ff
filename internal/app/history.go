package app

import "github.com/evan-pb/solitaire/internal/domain"

// History is an unbounded LIFO stack of pre-action snapshots. Every entry is an
// independent deep copy; later mutation of the live state can never corrupt it.
type History struct {
	stack []*domain.GameState
}

// Push stores a deep copy of the given state.
func (h *History) Push(s *domain.GameState) {
	h.stack = append(h.stack, s.Clone())
}

// Pop removes and returns the most recent snapshot, or nil if the stack is
// empty. Ownership of the snapshot transfers to the caller.
func (h *History) Pop() *domain.GameState {
	if len(h.stack) == 0 {
		return nil
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top
}

// Clear drops all snapshots.
func (h *History) Clear() {
	h.stack = nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.stack)
}
