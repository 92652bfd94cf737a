package models

import "testing"

func TestSelectionStateCloneIsIndependent(t *testing.T) {
	s := NewSelectionState()
	s.SelectedCounts["windtrap"] = 2
	s.ApartmentCounts[ArrakeenSmallApartment] = 1
	s.DiscountActive = true
	s.TargetDays = 5

	c := s.Clone()
	if !c.Equal(s) {
		t.Fatalf("clone differs: %+v vs %+v", c, s)
	}

	c.SelectedCounts["windtrap"] = 99
	c.TargetDays = 1
	if s.SelectedCounts["windtrap"] != 2 || s.TargetDays != 5 {
		t.Errorf("mutating clone changed original: %+v", s)
	}
}

func TestSelectionStateEqual(t *testing.T) {
	a := NewSelectionState()
	b := NewSelectionState()

	if !a.Equal(b) {
		t.Error("fresh states not equal")
	}

	a.SelectedCounts["x"] = 1
	if a.Equal(b) {
		t.Error("states with different counts reported equal")
	}

	b.SelectedCounts["x"] = 1
	b.DiscountActive = true
	if a.Equal(b) {
		t.Error("states with different discount reported equal")
	}
}
