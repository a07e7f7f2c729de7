package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/flashcards/internal/testutil"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}
}

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	gen = NewGenerator(&GeneratorOptions{OutputPath: "custom.csv"})
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestFromSet(t *testing.T) {
	set := testutil.NewTestSet(t, "Biology",
		[2]string{"Mitochondria", "Powerhouse of the cell"},
		[2]string{"Ribosome", "Protein factory"})

	cards := FromSet(set)
	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}

	src := set.Cards()
	for i, card := range cards {
		if card.ID != src[i].ID || card.Front != src[i].Term || card.Back != src[i].Definition {
			t.Errorf("card %d = %+v, want %+v", i, card, src[i])
		}
	}
}

func TestAddCardAndStats(t *testing.T) {
	gen := NewGenerator(nil)
	gen.AddCard(Card{Front: "uno", Back: "one"})
	gen.AddSet(testutil.NewTestSet(t, "Spanish", [2]string{"dos", "two"}))

	if gen.Stats() != 2 {
		t.Errorf("Expected 2 cards, got %d", gen.Stats())
	}
	if gen.GetCards()[1].Front != "dos" {
		t.Errorf("Expected second card 'dos', got %q", gen.GetCards()[1].Front)
	}
}

func TestGenerateCSV(t *testing.T) {
	tests := []struct {
		name           string
		includeHeaders bool
		wantRows       int
	}{
		{"with headers", true, 3},
		{"without headers", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputPath := filepath.Join(t.TempDir(), "out.csv")
			gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath, IncludeHeaders: tt.includeHeaders})
			gen.AddCard(Card{Front: "Mitochondria", Back: "Powerhouse of the cell"})
			gen.AddCard(Card{Front: "comma, term", Back: "quoted \"definition\""})

			if err := gen.GenerateCSV(); err != nil {
				t.Fatalf("GenerateCSV() error = %v", err)
			}

			file, err := os.Open(outputPath)
			if err != nil {
				t.Fatalf("Failed to open CSV: %v", err)
			}
			defer file.Close()

			records, err := csv.NewReader(file).ReadAll()
			if err != nil {
				t.Fatalf("Failed to read CSV: %v", err)
			}
			if len(records) != tt.wantRows {
				t.Fatalf("Expected %d rows, got %d", tt.wantRows, len(records))
			}

			last := records[len(records)-1]
			if last[0] != "comma, term" || last[1] != "quoted \"definition\"" {
				t.Errorf("Unexpected last row: %v", last)
			}
			if tt.includeHeaders && (records[0][0] != "Front" || records[0][1] != "Back") {
				t.Errorf("Unexpected header: %v", records[0])
			}
		})
	}
}

func TestGenerateCSVBadPath(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{OutputPath: filepath.Join(t.TempDir(), "missing", "out.csv")})
	if err := gen.GenerateCSV(); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
