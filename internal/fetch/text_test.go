package fetch

import "testing"

func TestParseQuantityAndName(t *testing.T) {
	tests := []struct {
		in   string
		qty  int
		name string
		ok   bool
	}{
		{"10x Plank", 10, "Plank", true},
		{"10 x Plank", 10, "Plank", true},
		{"Plank x10", 10, "Plank", true},
		{"Plank (10)", 10, "Plank", true},
		{"10 Salvaged Metal", 10, "Salvaged Metal", true},
		{"  26x   Salvaged Metal ", 26, "Salvaged Metal", true},
		{"Plank", 0, "", false},
		{"", 0, "", false},
	}

	for _, tt := range tests {
		qty, name, ok := parseQuantityAndName(tt.in)
		if ok != tt.ok || qty != tt.qty || name != tt.name {
			t.Errorf("parseQuantityAndName(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.in, qty, name, ok, tt.qty, tt.name, tt.ok)
		}
	}
}

func TestParseHours(t *testing.T) {
	tests := []struct {
		in    string
		hours float64
		ok    bool
	}{
		{"1h", 1, true},
		{"2 hours", 2, true},
		{"1.5 hr", 1.5, true},
		{"30m", 0.5, true},
		{"45 minutes", 0.75, true},
		{"x1h", 1, true},
		{"Fuel Cell (burns 20h)", 20, true},
		{"no duration here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		hours, ok := parseHours(tt.in)
		if ok != tt.ok || hours != tt.hours {
			t.Errorf("parseHours(%q) = (%g, %v), want (%g, %v)", tt.in, hours, ok, tt.hours, tt.ok)
		}
	}
}

func TestParseLiters(t *testing.T) {
	tests := []struct {
		in     string
		liters float64
		ok     bool
	}{
		{"45,000 L", 45000, true},
		{"500 liters", 500, true},
		{"1,234.5", 1234.5, true},
		{"no numbers", 0, false},
	}

	for _, tt := range tests {
		liters, ok := parseLiters(tt.in)
		if ok != tt.ok || liters != tt.liters {
			t.Errorf("parseLiters(%q) = (%g, %v), want (%g, %v)", tt.in, liters, ok, tt.liters, tt.ok)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Medium Fuel Generator", "medium_fuel_generator"},
		{"Spice-infused Fuel Cell", "spice_infused_fuel_cell"},
		{"  Windtrap  ", "windtrap"},
		{"Sub-Fief Console (Mk2)", "sub_fief_console_mk2"},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractInt(t *testing.T) {
	if n, ok := extractInt("Power: 75 units"); !ok || n != 75 {
		t.Errorf("extractInt = (%d, %v), want (75, true)", n, ok)
	}
	if _, ok := extractInt("no digits"); ok {
		t.Error("extractInt matched digit-free text")
	}
}
