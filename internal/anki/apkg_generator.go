package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/ruphon/internal"
)

// fieldSeparator joins note fields in the notes table
const fieldSeparator = "\x1f"

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	cards    []Card
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	now := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   now,
		modelID:  now + 1,
		cards:    make([]Card, 0),
	}
}

// AddCard adds a card to the package
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG builds collection.anki2 and the media map in a temporary
// directory and zips them into outputPath.
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "ruphon_apkg_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// no media is exported, but Anki expects the mapping file
	if err := os.WriteFile(filepath.Join(tempDir, "media"), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("failed to create media mapping: %w", err)
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := createZipPackage(tempDir, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}
	return nil
}

func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}
	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}
	return nil
}

var schema = []string{
	`CREATE TABLE col (
		id integer PRIMARY KEY,
		crt integer NOT NULL,
		mod integer NOT NULL,
		scm integer NOT NULL,
		ver integer NOT NULL,
		dty integer NOT NULL,
		usn integer NOT NULL,
		ls integer NOT NULL,
		conf text NOT NULL,
		models text NOT NULL,
		decks text NOT NULL,
		dconf text NOT NULL,
		tags text NOT NULL
	)`,
	`CREATE TABLE notes (
		id integer PRIMARY KEY,
		guid text NOT NULL,
		mid integer NOT NULL,
		mod integer NOT NULL,
		usn integer NOT NULL,
		tags text NOT NULL,
		flds text NOT NULL,
		sfld text NOT NULL,
		csum integer NOT NULL,
		flags integer NOT NULL,
		data text NOT NULL
	)`,
	`CREATE TABLE cards (
		id integer PRIMARY KEY,
		nid integer NOT NULL,
		did integer NOT NULL,
		ord integer NOT NULL,
		mod integer NOT NULL,
		usn integer NOT NULL,
		type integer NOT NULL,
		queue integer NOT NULL,
		due integer NOT NULL,
		ivl integer NOT NULL,
		factor integer NOT NULL,
		reps integer NOT NULL,
		lapses integer NOT NULL,
		left integer NOT NULL,
		odue integer NOT NULL,
		odid integer NOT NULL,
		flags integer NOT NULL,
		data text NOT NULL
	)`,
	`CREATE TABLE revlog (
		id integer PRIMARY KEY,
		cid integer NOT NULL,
		usn integer NOT NULL,
		ease integer NOT NULL,
		ivl integer NOT NULL,
		lastIvl integer NOT NULL,
		factor integer NOT NULL,
		time integer NOT NULL,
		type integer NOT NULL
	)`,
	`CREATE TABLE graves (
		usn integer NOT NULL,
		oid integer NOT NULL,
		type integer NOT NULL
	)`,
	`CREATE INDEX ix_notes_usn ON notes (usn)`,
	`CREATE INDEX ix_cards_usn ON cards (usn)`,
	`CREATE INDEX ix_cards_nid ON cards (nid)`,
	`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
	`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
}

func createTables(db *sql.DB) error {
	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := time.Now().Unix()

	deck := func(id int64, name, desc string) map[string]any {
		return map[string]any{
			"id": id, "name": name, "desc": desc, "mod": now,
			"collapsed": false, "dyn": 0, "conf": 1, "usn": 0,
			"newToday": []int{0, 0}, "revToday": []int{0, 0},
			"lrnToday": []int{0, 0}, "timeToday": []int{0, 0},
			"extendNew": 10, "extendRev": 50,
		}
	}
	decks := map[string]any{
		"1": deck(1, "Default", ""),
		fmt.Sprint(g.deckID): deck(g.deckID, g.deckName, "Transcription spelling cards created by ruphon"),
	}

	models := map[string]any{
		fmt.Sprint(g.modelID): g.noteType(now),
	}

	conf := map[string]any{
		"nextPos":     1,
		"estTimes":    true,
		"activeDecks": []int64{1},
		"sortType":    "noteFld",
		"addToCur":    true,
		"curDeck":     1,
		"dueCounts":   true,
		"schedVer":    1,
		"curModel":    fmt.Sprint(g.modelID),
	}

	dconf := map[string]any{
		"1": map[string]any{
			"id": 1, "name": "Default", "dyn": 0, "usn": 0, "mod": now,
			"maxTaken": 60, "timer": 0, "autoplay": true, "replayq": true,
			"new": map[string]any{
				"delays": []int{1, 10}, "ints": []int{1, 4, 7},
				"initialFactor": 2500, "perDay": 20, "order": 1,
			},
			"lapse": map[string]any{
				"delays": []int{10}, "mult": 0, "minInt": 1,
				"leechFails": 8, "leechAction": 0,
			},
			"rev": map[string]any{
				"perDay": 100, "ease4": 1.3, "fuzz": 0.05,
				"maxIvl": 36500, "ivlFct": 1, "minSpace": 1,
			},
		},
	}

	encoded := make([]string, 0, 4)
	for _, v := range []any{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		encoded = append(encoded, string(data))
	}

	_, err := db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver
		0,        // dty
		0,        // usn
		0,        // ls
		encoded[0],
		encoded[1],
		encoded[2],
		encoded[3],
		"{}",
	)
	return err
}

func (g *APKGGenerator) noteType(now int64) map[string]any {
	field := func(name string, ord int) map[string]any {
		return map[string]any{
			"name": name, "ord": ord, "sticky": false, "rtl": false,
			"font": "Arial", "size": 20, "media": []string{},
		}
	}
	return map[string]any{
		"id":    g.modelID,
		"name":  "Transcription (ruphon)",
		"type":  0,
		"mod":   now,
		"usn":   -1,
		"sortf": 0,
		"did":   g.deckID,
		"req":   [][]any{{0, "all", []int{0}}, {1, "all", []int{1}}},
		"tags":  []string{},
		"vers":  []int{},
		"flds": []map[string]any{
			field("Transcription", 0),
			field("Spelling", 1),
			field("Notes", 2),
		},
		"tmpls": []map[string]any{
			{
				"name": "Spell", "ord": 0, "did": nil, "bqfmt": "", "bafmt": "",
				"qfmt": `<div class="ipa">[{{Transcription}}]</div>`,
				"afmt": `{{FrontSide}}<hr id="answer"><div class="spelling">{{Spelling}}</div>{{#Notes}}<div class="notes">{{Notes}}</div>{{/Notes}}`,
			},
			{
				"name": "Pronounce", "ord": 1, "did": nil, "bqfmt": "", "bafmt": "",
				"qfmt": `<div class="spelling">{{Spelling}}</div>`,
				"afmt": `{{FrontSide}}<hr id="answer"><div class="ipa">[{{Transcription}}]</div>`,
			},
		},
		"css": `.card { font-family: Arial, sans-serif; font-size: 20px; text-align: center; }
.ipa { font-size: 28px; color: #2c3e50; }
.spelling { font-size: 32px; font-weight: bold; color: #c0392b; }
.notes { font-size: 16px; color: #7f8c8d; font-style: italic; }`,
	}
}

func (g *APKGGenerator) insertNotesAndCards(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for i, card := range g.cards {
		// three ids per note: the note and its two cards
		noteID := now.UnixMilli() + int64(i*3)
		fields := strings.Join([]string{card.Transcription, card.Spelling, card.Notes}, fieldSeparator)

		_, err := tx.Exec(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			noteID,
			uuid.NewString(),
			g.modelID,
			now.Unix(),
			-1,
			"ruphon",
			fields,
			card.Transcription,
			0,
			0,
			"",
		)
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		for ord := 0; ord < 2; ord++ {
			cardID := noteID + int64(ord) + 1
			_, err := tx.Exec(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				cardID, noteID, g.deckID, ord, now.Unix(), -1,
				0,      // type: new
				0,      // queue: new
				cardID, // due: position for new cards
				0, 0, 0, 0, 0, 0, 0, 0, "",
			)
			if err != nil {
				return fmt.Errorf("failed to insert card %d of note %d: %w", ord, noteID, err)
			}
		}
	}

	return tx.Commit()
}

func createZipPackage(srcDir, outputPath string) (err error) {
	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer internal.CloseFile(zipFile, &err)

	archive := zip.NewWriter(zipFile)

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := addZipEntry(archive, srcDir, entry.Name()); err != nil {
			return err
		}
	}

	return archive.Close()
}

func addZipEntry(archive *zip.Writer, dir, name string) error {
	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer file.Close()

	writer, err := archive.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, file)
	return err
}
