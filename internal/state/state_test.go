package state

import (
	"errors"
	"testing"

	"github.com/gizmo3030/duneplan/internal/models"
)

func TestSetCount(t *testing.T) {
	sess := NewSession()

	if err := sess.SetCount("windtrap", 3); err != nil {
		t.Fatalf("SetCount failed: %v", err)
	}
	if got := sess.Count("windtrap"); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	// Zero removes the entry entirely.
	if err := sess.SetCount("windtrap", 0); err != nil {
		t.Fatalf("SetCount(0) failed: %v", err)
	}
	if _, ok := sess.State().SelectedCounts["windtrap"]; ok {
		t.Error("zero count was stored instead of pruned")
	}
}

func TestSetCountRejectsNegative(t *testing.T) {
	sess := NewSession()
	_ = sess.SetCount("windtrap", 2)

	err := sess.SetCount("windtrap", -1)
	if err == nil {
		t.Fatal("negative count accepted")
	}
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error %v is not a ValidationError", err)
	}
	if got := sess.Count("windtrap"); got != 2 {
		t.Errorf("state changed after rejected mutation: count = %d, want 2", got)
	}
}

func TestSetTargetDays(t *testing.T) {
	sess := NewSession()

	if err := sess.SetTargetDays(7); err != nil {
		t.Fatalf("SetTargetDays failed: %v", err)
	}
	if sess.State().TargetDays != 7 {
		t.Errorf("TargetDays = %d, want 7", sess.State().TargetDays)
	}

	err := sess.SetTargetDays(-1)
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("negative days: got %v, want ValidationError", err)
	}
	if sess.State().TargetDays != 7 {
		t.Errorf("TargetDays changed after rejected mutation: %d", sess.State().TargetDays)
	}
}

func TestSetApartmentCount(t *testing.T) {
	sess := NewSession()

	if err := sess.SetApartmentCount(models.ArrakeenSmallApartment, 2); err != nil {
		t.Fatalf("SetApartmentCount failed: %v", err)
	}
	if err := sess.SetApartmentCount(models.ArrakeenSmallApartment, 0); err != nil {
		t.Fatalf("SetApartmentCount(0) failed: %v", err)
	}
	if _, ok := sess.State().ApartmentCounts[models.ArrakeenSmallApartment]; ok {
		t.Error("zero apartment count was stored instead of pruned")
	}

	var ve *models.ValidationError
	if err := sess.SetApartmentCount(models.ArrakeenSmallApartment, -3); !errors.As(err, &ve) {
		t.Errorf("negative apartment count: got %v, want ValidationError", err)
	}
}

func TestAdjustClampsAtZero(t *testing.T) {
	sess := NewSession()

	sess.Adjust("windtrap", -5)
	if got := sess.Count("windtrap"); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
	if _, ok := sess.State().SelectedCounts["windtrap"]; ok {
		t.Error("clamped adjust left a zero entry")
	}

	sess.Adjust("windtrap", 2)
	sess.Adjust("windtrap", -1)
	if got := sess.Count("windtrap"); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestToggleDiscount(t *testing.T) {
	sess := NewSession()

	sess.SetDiscount(true)
	if !sess.State().DiscountActive {
		t.Error("discount not enabled")
	}
	sess.SetDiscount(false)
	if sess.State().DiscountActive {
		t.Error("discount not disabled")
	}
}
