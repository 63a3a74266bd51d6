package names

import "testing"

func TestNormalizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple words", "Group A Stage", "group-a-stage"},
		{"multiple spaces collapse", "  Multi   Space ", "multi-space"},
		{"tabs and newlines", "Cup\tof\nNations", "cup-of-nations"},
		{"already normalized", "premier-league", "premier-league"},
		{"uppercase only", "CAF", "caf"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"punctuation passes through", "Copa (Clausura)", "copa-(clausura)"},
		{"non-ascii passes through", "Süper Lig", "süper-lig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFileName(tt.input); got != tt.expected {
				t.Errorf("NormalizeFileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeFolderName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"forbidden set", `A/B:C*D`, "A-B-C-D"},
		{"backslash and pipe", `North\South|East`, "North-South-East"},
		{"quotes and angles", `"Region" <One>`, "-Region- -One-"},
		{"question mark", "Where?", "Where-"},
		{"case preserved", "South America", "South America"},
		{"accents untouched", "Côte d'Ivoire", "Côte d'Ivoire"},
		{"parentheses untouched", "Europe (UEFA)", "Europe (UEFA)"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFolderName(tt.input); got != tt.expected {
				t.Errorf("SanitizeFolderName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
