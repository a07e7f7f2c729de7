package internal

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Biology", "Biology"},
		{"Cell Biology 101", "Cell_Biology_101"},
		{"  trimmed  ", "trimmed"},
		{"a/b\\c:d", "a_b_c_d"},
		{"ябълка", "ябълка"},
		{"", "flashcards"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
