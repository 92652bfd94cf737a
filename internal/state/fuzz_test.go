package state

import (
	"testing"
)

// FuzzDecode throws arbitrary documents at the importer. Whatever comes
// in, Decode must either reject it with an error or produce a state
// that survives a further encode/decode cycle unchanged.
func FuzzDecode(f *testing.F) {
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"discount_active": true, "target_days": 7, "selected_counts": {"windtrap": 2}}`))
	f.Add([]byte(`{"selected_counts": {"a": 0}, "apartment_counts": {"b": 3}}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`not json at all`))
	f.Add([]byte(`{"target_days": -4}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		s, err := Decode(data)
		if err != nil {
			return
		}

		// Decoded states carry no zero entries and no negatives.
		if s.TargetDays < 0 {
			t.Fatalf("decoded negative target days: %d", s.TargetDays)
		}
		for id, n := range s.SelectedCounts {
			if n <= 0 {
				t.Fatalf("decoded non-positive count %d for %q", n, id)
			}
		}
		for id, n := range s.ApartmentCounts {
			if n <= 0 {
				t.Fatalf("decoded non-positive apartment count %d for %q", n, id)
			}
		}

		encoded, err := Encode(s)
		if err != nil {
			t.Fatalf("Encode failed on decoded state: %v", err)
		}
		again, err := Decode(encoded)
		if err != nil {
			t.Fatalf("re-Decode failed: %v", err)
		}
		if !again.Equal(s) {
			t.Fatalf("round trip changed state:\nfirst:  %+v\nsecond: %+v", s, again)
		}
	})
}
