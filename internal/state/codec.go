package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gizmo3030/duneplan/internal/models"
)

// documentVersion is written into exports for forward compatibility.
// Decode does not require it: any document with the right field shapes
// imports, whatever produced it.
const documentVersion = 1

// Document is the export file shape. Zero counts are pruned on encode,
// so Decode(Encode(s)) reproduces s exactly.
type Document struct {
	Version         int            `json:"version"`
	DiscountActive  bool           `json:"discount_active"`
	TargetDays      int            `json:"target_days"`
	SelectedCounts  map[string]int `json:"selected_counts"`
	ApartmentCounts map[string]int `json:"apartment_counts"`
}

// Encode serializes a selection state to its export document.
func Encode(s *models.SelectionState) ([]byte, error) {
	doc := Document{
		Version:         documentVersion,
		DiscountActive:  s.DiscountActive,
		TargetDays:      s.TargetDays,
		SelectedCounts:  prunePositive(s.SelectedCounts),
		ApartmentCounts: prunePositive(s.ApartmentCounts),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Decode parses an export document into a fresh selection state. On any
// error the caller's current state is untouched: decoding is all or
// nothing. Unknown fields are ignored and missing fields default, so
// documents from newer or older versions of the planner still import.
func Decode(data []byte) (*models.SelectionState, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, models.NewImportFormatError("document is not a JSON object")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, models.NewImportFormatError("malformed document: %v", err)
	}
	if doc.TargetDays < 0 {
		return nil, models.NewImportFormatError("target_days must not be negative, got %d", doc.TargetDays)
	}
	for id, n := range doc.SelectedCounts {
		if n < 0 {
			return nil, models.NewImportFormatError("selected_counts[%q] must not be negative, got %d", id, n)
		}
	}
	for id, n := range doc.ApartmentCounts {
		if n < 0 {
			return nil, models.NewImportFormatError("apartment_counts[%q] must not be negative, got %d", id, n)
		}
	}

	s := models.NewSelectionState()
	s.DiscountActive = doc.DiscountActive
	s.TargetDays = doc.TargetDays
	for id, n := range doc.SelectedCounts {
		if n > 0 {
			s.SelectedCounts[id] = n
		}
	}
	for id, n := range doc.ApartmentCounts {
		if n > 0 {
			s.ApartmentCounts[id] = n
		}
	}
	return s, nil
}

// ExportFilename is the conventional name for an export written on the
// given date, e.g. dune-base-plan-2026-08-30.json. Import accepts any
// filename.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("dune-base-plan-%s.json", t.Format("2006-01-02"))
}

func prunePositive(counts map[string]int) map[string]int {
	out := make(map[string]int, len(counts))
	for id, n := range counts {
		if n > 0 {
			out[id] = n
		}
	}
	return out
}
