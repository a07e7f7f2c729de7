package batch

import (
	"path/filepath"
	"reflect"
	"testing"

	"codeberg.org/snonux/flashcards/internal/testutil"
)

func TestParseText(t *testing.T) {
	content := "# biology\n" +
		"Mitochondria = Powerhouse of the cell\r\n" +
		"\n" +
		"  Ribosome=Protein factory  \n" +
		"Nucleus\n" +
		"= orphan definition\n" +
		"Equation = a = b\n"

	got := ParseText(content)
	want := []CardEntry{
		{Term: "Mitochondria", Definition: "Powerhouse of the cell", Line: 2},
		{Term: "Ribosome", Definition: "Protein factory", Line: 4},
		{Term: "Nucleus", Line: 5},
		{Definition: "orphan definition", Line: 6},
		{Term: "Equation", Definition: "a = b", Line: 7},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseText() =\n%+v\nwant\n%+v", got, want)
	}
}

func TestReadBatchFileText(t *testing.T) {
	path := testutil.WriteTempFile(t, "biology.txt", "Mitochondria = Powerhouse of the cell\n")

	tests := []struct {
		name     string
		setName  string
		expected string
	}{
		{"name from file", "", "biology"},
		{"explicit name", "Cells", "Cells"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets, err := ReadBatchFile(path, tt.setName)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if len(sets) != 1 {
				t.Fatalf("Expected 1 set, got %d", len(sets))
			}
			if sets[0].Name != tt.expected {
				t.Errorf("Name = %q, want %q", sets[0].Name, tt.expected)
			}
			if len(sets[0].Cards) != 1 {
				t.Errorf("Expected 1 card, got %d", len(sets[0].Cards))
			}
		})
	}
}

func TestReadBatchFileYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []SetEntry
	}{
		{
			name: "single set",
			content: `name: Biology
cards:
  - term: Mitochondria
    definition: Powerhouse of the cell
`,
			want: []SetEntry{{
				Name:  "Biology",
				Cards: []CardEntry{{Term: "Mitochondria", Definition: "Powerhouse of the cell"}},
			}},
		},
		{
			name: "list of sets",
			content: `- name: Spanish
  cards:
    - {term: uno, definition: one}
    - {term: dos, definition: two}
- name: Empty
`,
			want: []SetEntry{
				{Name: "Spanish", Cards: []CardEntry{
					{Term: "uno", Definition: "one"},
					{Term: "dos", Definition: "two"},
				}},
				{Name: "Empty"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteTempFile(t, "decks.yaml", tt.content)
			got, err := ReadBatchFile(path, "ignored")
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFileErrors(t *testing.T) {
	if _, err := ReadBatchFile(filepath.Join(t.TempDir(), "missing.txt"), ""); err == nil {
		t.Error("Expected error for missing file")
	}

	path := testutil.WriteTempFile(t, "bad.yml", "just a string\n")
	if _, err := ReadBatchFile(path, ""); err == nil {
		t.Error("Expected error for scalar YAML document")
	}

	path = testutil.WriteTempFile(t, "broken.yaml", "name: [unclosed\n")
	if _, err := ReadBatchFile(path, ""); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestParseYAMLEmpty(t *testing.T) {
	sets, err := ParseYAML(nil)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if len(sets) != 0 {
		t.Errorf("Expected no sets, got %d", len(sets))
	}
}
