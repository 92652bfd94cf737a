// Package state owns the mutable planning session and its export
// document format.
package state

import (
	"github.com/gizmo3030/duneplan/internal/models"
)

// Session wraps a SelectionState with validated mutators. Mutators only
// update the container; callers re-run the planner to refresh totals.
type Session struct {
	state *models.SelectionState
}

// NewSession starts an empty planning session.
func NewSession() *Session {
	return &Session{state: models.NewSelectionState()}
}

// NewSessionFrom adopts an existing state, e.g. one returned by Decode.
func NewSessionFrom(s *models.SelectionState) *Session {
	if s == nil {
		return NewSession()
	}
	return &Session{state: s}
}

// State exposes the underlying selection for the planner and codec.
func (s *Session) State() *models.SelectionState {
	return s.state
}

// SetCount sets the selected count for an item id. A count of zero
// removes the entry; a negative count is rejected and the session is
// left unchanged.
func (s *Session) SetCount(id string, count int) error {
	if count < 0 {
		return models.NewValidationError("count", "must not be negative, got %d", count)
	}
	if count == 0 {
		delete(s.state.SelectedCounts, id)
		return nil
	}
	s.state.SelectedCounts[id] = count
	return nil
}

// SetApartmentCount sets the quick-add count for an apartment type,
// with the same zero-prunes / negative-rejects rules as SetCount.
func (s *Session) SetApartmentCount(id string, count int) error {
	if count < 0 {
		return models.NewValidationError("apartment count", "must not be negative, got %d", count)
	}
	if count == 0 {
		delete(s.state.ApartmentCounts, id)
		return nil
	}
	s.state.ApartmentCounts[id] = count
	return nil
}

// SetDiscount toggles the Deep Desert build cost discount.
func (s *Session) SetDiscount(active bool) {
	s.state.DiscountActive = active
}

// SetTargetDays sets how many days the consumable supply must cover.
func (s *Session) SetTargetDays(days int) error {
	if days < 0 {
		return models.NewValidationError("target days", "must not be negative, got %d", days)
	}
	s.state.TargetDays = days
	return nil
}

// Count returns the selected count for an item id, zero when absent.
func (s *Session) Count(id string) int {
	return s.state.SelectedCounts[id]
}

// Adjust adds delta to an item's count, clamping at zero. Convenient
// for the TUI's increment/decrement keys.
func (s *Session) Adjust(id string, delta int) {
	next := s.state.SelectedCounts[id] + delta
	if next < 0 {
		next = 0
	}
	// next is never negative here, SetCount cannot fail.
	_ = s.SetCount(id, next)
}
