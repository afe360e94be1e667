package facematch

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase passthrough",
			input:    "alice",
			expected: "alice",
		},
		{
			name:     "mixed case",
			input:    "Alice Smith",
			expected: "alice smith",
		},
		{
			name:     "diacritics removed",
			input:    "Jiří Novák",
			expected: "jiri novak",
		},
		{
			name:     "dashes become spaces",
			input:    "jan-novak",
			expected: "jan novak",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  Bob  ",
			expected: "bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.expected {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
