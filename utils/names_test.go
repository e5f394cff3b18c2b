package utils

import "testing"

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		budget int
		want   string
	}{
		{"short name unchanged", "Bo", 12, "Bo"},
		{"exactly at budget", "Alexandrinas", 12, "Alexandrinas"},
		{"long name truncated", "Alexandrina-Beaumont", 12, "Alexandrina…"},
		{"cut on hyphen drops it", "Anne-Beaumont", 6, "Anne…"},
		{"accented graphemes count once", "Zoë Ångström", 12, "Zoë Ångström"},
		{"budget of one", "Hal", 1, "…"},
		{"zero budget", "Hal", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateName(tt.in, tt.budget)
			if got != tt.want {
				t.Errorf("TruncateName(%q, %d) = %q, want %q", tt.in, tt.budget, got, tt.want)
			}
			if GraphemeCount(got) > tt.budget && tt.budget > 0 {
				t.Errorf("TruncateName(%q, %d) has %d characters, over budget", tt.in, tt.budget, GraphemeCount(got))
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	// "e" + combining diaeresis composes to a single code point
	got := NormalizeName("  Zoe\u0308   Smith ")
	if got != "Zo\u00eb Smith" {
		t.Errorf("NormalizeName = %q, want %q", got, "Zo\u00eb Smith")
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Thames Rowing Club", 3, "TRC"},
		{"leander club", 3, "LC"},
		{"Oxford University Boat Club", 2, "OU"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := Initials(tt.in, tt.max); got != tt.want {
			t.Errorf("Initials(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
