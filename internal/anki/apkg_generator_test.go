package anki

import (
	"archive/zip"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAPKGGenerator(t *testing.T) {
	gen := NewAPKGGenerator("Test Deck")

	if gen.deckName != "Test Deck" {
		t.Errorf("Expected deck name 'Test Deck', got '%s'", gen.deckName)
	}
	if gen.modelID == gen.deckID {
		t.Error("Expected distinct deck and model IDs")
	}
	if len(gen.cards) != 0 {
		t.Errorf("Expected empty cards slice, got %d cards", len(gen.cards))
	}
}

func TestGenerateAPKG(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "deck.apkg")

	gen := NewGenerator(nil)
	gen.AddCard(Card{Transcription: "nʲæ", Spelling: "ня"})
	gen.AddCard(Card{Transcription: "podjezd", Spelling: "подъезд", Notes: "подъезд"})

	if err := gen.GenerateAPKG(outputPath, "Spelling"); err != nil {
		t.Fatalf("GenerateAPKG() error = %v", err)
	}

	reader, err := zip.OpenReader(outputPath)
	if err != nil {
		t.Fatalf("Failed to open APKG as zip: %v", err)
	}
	defer reader.Close()

	files := make(map[string]*zip.File)
	for _, f := range reader.File {
		files[f.Name] = f
	}
	for _, name := range []string{"collection.anki2", "media"} {
		if _, ok := files[name]; !ok {
			t.Fatalf("Expected %s in package", name)
		}
	}

	dbPath := extract(t, files["collection.anki2"], tempDir)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	var notes, cards int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&notes); err != nil {
		t.Fatalf("Failed to count notes: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&cards); err != nil {
		t.Fatalf("Failed to count cards: %v", err)
	}
	if notes != 2 || cards != 4 {
		t.Errorf("Expected 2 notes and 4 cards, got %d and %d", notes, cards)
	}

	var flds string
	if err := db.QueryRow("SELECT flds FROM notes WHERE sfld = ?", "podjezd").Scan(&flds); err != nil {
		t.Fatalf("Failed to read note: %v", err)
	}
	if got := strings.Split(flds, fieldSeparator); len(got) != 3 || got[1] != "подъезд" {
		t.Errorf("Unexpected note fields %q", got)
	}

	var decks string
	if err := db.QueryRow("SELECT decks FROM col").Scan(&decks); err != nil {
		t.Fatalf("Failed to read collection: %v", err)
	}
	if !strings.Contains(decks, `"Spelling"`) {
		t.Errorf("Expected deck name in collection, got %s", decks)
	}
}

func TestGenerateAPKG_BadPath(t *testing.T) {
	gen := NewAPKGGenerator("Test")
	if err := gen.GenerateAPKG(filepath.Join(t.TempDir(), "missing", "deck.apkg")); err == nil {
		t.Error("Expected error for missing output directory")
	}
}

func extract(t *testing.T, f *zip.File, dir string) string {
	t.Helper()

	rc, err := f.Open()
	if err != nil {
		t.Fatalf("Failed to open %s: %v", f.Name, err)
	}
	defer rc.Close()

	path := filepath.Join(dir, f.Name)
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		t.Fatalf("Failed to extract %s: %v", f.Name, err)
	}
	return path
}
