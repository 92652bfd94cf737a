package state

import (
	"errors"
	"testing"
	"time"

	"github.com/gizmo3030/duneplan/internal/models"
)

func TestRoundTrip(t *testing.T) {
	s := models.NewSelectionState()
	s.DiscountActive = true
	s.TargetDays = 14
	s.SelectedCounts["windtrap"] = 4
	s.SelectedCounts["spice_refinery"] = 1
	s.ApartmentCounts[models.ArrakeenLargeApartment] = 2

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !got.Equal(s) {
		t.Errorf("round trip changed state:\nin:  %+v\nout: %+v", s, got)
	}
}

func TestRoundTripEmptyState(t *testing.T) {
	s := models.NewSelectionState()

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !got.Equal(s) {
		t.Errorf("round trip changed empty state: %+v", got)
	}
}

func TestEncodePrunesZeroCounts(t *testing.T) {
	s := models.NewSelectionState()
	s.SelectedCounts["windtrap"] = 0
	s.SelectedCounts["fabricator"] = 2

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, ok := got.SelectedCounts["windtrap"]; ok {
		t.Error("zero count survived the round trip")
	}
	if got.SelectedCounts["fabricator"] != 2 {
		t.Errorf("fabricator = %d, want 2", got.SelectedCounts["fabricator"])
	}
}

func TestDecodeDefaultsMissingFields(t *testing.T) {
	got, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.DiscountActive || got.TargetDays != 0 {
		t.Errorf("defaults wrong: %+v", got)
	}
	if len(got.SelectedCounts) != 0 || len(got.ApartmentCounts) != 0 {
		t.Errorf("maps not empty: %+v", got)
	}
	// A defaulted state must still be mutable.
	got.SelectedCounts["x"] = 1
}

func TestDecodeToleratesUnknownFields(t *testing.T) {
	got, err := Decode([]byte(`{"target_days": 3, "exported_by": "web-ui", "schema": 99}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.TargetDays != 3 {
		t.Errorf("TargetDays = %d, want 3", got.TargetDays)
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ``},
		{"not json", `windtrap x4`},
		{"array", `[1, 2, 3]`},
		{"null", `null`},
		{"string days", `{"target_days": "seven"}`},
		{"negative days", `{"target_days": -1}`},
		{"non-integer count", `{"selected_counts": {"windtrap": 1.5}}`},
		{"negative count", `{"selected_counts": {"windtrap": -2}}`},
		{"negative apartment count", `{"apartment_counts": {"arrakeen_small_apartment": -1}}`},
		{"wrong counts shape", `{"selected_counts": ["windtrap"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			var ife *models.ImportFormatError
			if !errors.As(err, &ife) {
				t.Errorf("error %v is not an ImportFormatError", err)
			}
		})
	}
}

func TestDecodeDropsZeroCountEntries(t *testing.T) {
	got, err := Decode([]byte(`{"selected_counts": {"windtrap": 0, "fabricator": 1}}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if _, ok := got.SelectedCounts["windtrap"]; ok {
		t.Error("zero count entry imported")
	}
	if got.SelectedCounts["fabricator"] != 1 {
		t.Errorf("fabricator = %d, want 1", got.SelectedCounts["fabricator"])
	}
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	if got := ExportFilename(ts); got != "dune-base-plan-2026-08-30.json" {
		t.Errorf("ExportFilename = %q", got)
	}
}
