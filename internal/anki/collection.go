package anki

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// schema is the Anki collection layout, schema version 11. go-sqlite3 runs
// the statements in one Exec.
const schema = `
CREATE TABLE col (id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
	scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL, usn integer NOT NULL,
	ls integer NOT NULL, conf text NOT NULL, models text NOT NULL, decks text NOT NULL,
	dconf text NOT NULL, tags text NOT NULL);
CREATE TABLE notes (id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
	mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL, flds text NOT NULL,
	sfld text NOT NULL, csum integer NOT NULL, flags integer NOT NULL, data text NOT NULL);
CREATE TABLE cards (id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
	ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL, type integer NOT NULL,
	queue integer NOT NULL, due integer NOT NULL, ivl integer NOT NULL, factor integer NOT NULL,
	reps integer NOT NULL, lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
	odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL);
CREATE TABLE revlog (id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
	ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL, factor integer NOT NULL,
	time integer NOT NULL, type integer NOT NULL);
CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL);
CREATE INDEX ix_notes_csum ON notes (csum);
CREATE INDEX ix_notes_usn ON notes (usn);
CREATE INDEX ix_cards_usn ON cards (usn);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
CREATE INDEX ix_revlog_usn ON revlog (usn);
CREATE INDEX ix_revlog_cid ON revlog (cid);
`

// defaultConfID is the deck options group every exported deck points at.
const defaultConfID = 1

type collectionConf struct {
	NextPos     int     `json:"nextPos"`
	CurDeck     int64   `json:"curDeck"`
	ActiveDecks []int64 `json:"activeDecks"`
	CurModel    string  `json:"curModel"`
	SchedVer    int     `json:"schedVer"`
}

type ankiDeck struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Mod       int64  `json:"mod"`
	USN       int    `json:"usn"`
	Dyn       int    `json:"dyn"`
	Conf      int    `json:"conf"`
	Collapsed bool   `json:"collapsed"`
	NewToday  [2]int `json:"newToday"`
	RevToday  [2]int `json:"revToday"`
	LrnToday  [2]int `json:"lrnToday"`
	TimeToday [2]int `json:"timeToday"`
}

type deckOptions struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Mod      int64  `json:"mod"`
	USN      int    `json:"usn"`
	MaxTaken int    `json:"maxTaken"`
	New      struct {
		Delays        []float64 `json:"delays"`
		Ints          [3]int    `json:"ints"`
		InitialFactor int       `json:"initialFactor"`
		PerDay        int       `json:"perDay"`
		Order         int       `json:"order"`
	} `json:"new"`
	Lapse struct {
		Delays      []float64 `json:"delays"`
		Mult        float64   `json:"mult"`
		MinInt      int       `json:"minInt"`
		LeechFails  int       `json:"leechFails"`
		LeechAction int       `json:"leechAction"`
	} `json:"lapse"`
	Rev struct {
		PerDay int     `json:"perDay"`
		Ease4  float64 `json:"ease4"`
		MaxIvl int     `json:"maxIvl"`
		IvlFct float64 `json:"ivlFct"`
	} `json:"rev"`
}

type noteField struct {
	Name  string   `json:"name"`
	Ord   int      `json:"ord"`
	Font  string   `json:"font"`
	Size  int      `json:"size"`
	Media []string `json:"media"`
}

type cardTemplate struct {
	Name string `json:"name"`
	Ord  int    `json:"ord"`
	Qfmt string `json:"qfmt"`
	Afmt string `json:"afmt"`
}

type noteType struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Type      int            `json:"type"`
	Mod       int64          `json:"mod"`
	USN       int            `json:"usn"`
	Sortf     int            `json:"sortf"`
	Did       int64          `json:"did"`
	Req       []any          `json:"req"`
	Tags      []string       `json:"tags"`
	Flds      []noteField    `json:"flds"`
	Tmpls     []cardTemplate `json:"tmpls"`
	CSS       string         `json:"css"`
	LatexPre  string         `json:"latexPre"`
	LatexPost string         `json:"latexPost"`
}

const (
	frontTemplate = `<div class="term">{{Front}}</div>`
	backTemplate  = "{{FrontSide}}\n\n<hr id=\"answer\">\n\n<div class=\"definition\">{{Back}}</div>"
	latexPre      = "\\documentclass[12pt]{article}\n\\special{papersize=3in,5in}\n" +
		"\\usepackage[utf8]{inputenc}\n\\usepackage{amssymb,amsmath}\n\\pagestyle{empty}\n" +
		"\\setlength{\\parindent}{0in}\n\\begin{document}"
)

const cardCSS = `.card { font-family: Arial, sans-serif; font-size: 22px; text-align: center; }
.term { font-size: 30px; font-weight: 500; }
.definition { font-size: 24px; }`

func newDeck(id int64, name, desc string, mod int64) ankiDeck {
	return ankiDeck{ID: id, Name: name, Desc: desc, Mod: mod, Conf: defaultConfID}
}

func newDeckOptions(mod int64) deckOptions {
	o := deckOptions{ID: defaultConfID, Name: "Default", Mod: mod, MaxTaken: 60}
	o.New.Delays = []float64{1, 10}
	o.New.Ints = [3]int{1, 4, 7}
	o.New.InitialFactor = 2500
	o.New.PerDay = 20
	o.New.Order = 1
	o.Lapse.Delays = []float64{10}
	o.Lapse.MinInt = 1
	o.Lapse.LeechFails = 8
	o.Rev.PerDay = 100
	o.Rev.Ease4 = 1.3
	o.Rev.MaxIvl = 36500
	o.Rev.IvlFct = 1
	return o
}

// buildNoteType returns a Basic note type: Front shows the term, Back the definition.
func (g *APKGGenerator) buildNoteType(mod int64) noteType {
	return noteType{
		ID:        g.modelID,
		Name:      "Flashcard (Term/Definition)",
		Mod:       mod,
		USN:       -1,
		Did:       g.deckID,
		Req:       []any{[]any{0, "all", []int{0}}},
		Tags:      []string{},
		Flds:      []noteField{newField("Front", 0), newField("Back", 1)},
		Tmpls:     []cardTemplate{{Name: "Card 1", Qfmt: frontTemplate, Afmt: backTemplate}},
		CSS:       cardCSS,
		LatexPre:  latexPre,
		LatexPost: "\\end{document}",
	}
}

func newField(name string, ord int) noteField {
	return noteField{Name: name, Ord: ord, Font: "Arial", Size: 20, Media: []string{}}
}

// insertCollection writes the single col row describing decks, note type and
// deck options.
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := g.now().Unix()
	modelKey := strconv.FormatInt(g.modelID, 10)

	columns := []any{
		collectionConf{NextPos: 1, CurDeck: 1, ActiveDecks: []int64{1}, CurModel: modelKey, SchedVer: 1},
		map[string]noteType{modelKey: g.buildNoteType(now)},
		map[string]ankiDeck{
			"1": newDeck(1, "Default", "", now),
			strconv.FormatInt(g.deckID, 10): newDeck(g.deckID, g.deckName, "Flashcard set exported from flashcards", now),
		},
		map[string]deckOptions{strconv.Itoa(defaultConfID): newDeckOptions(now)},
	}

	encoded := make([]any, len(columns))
	for i, col := range columns {
		b, err := json.Marshal(col)
		if err != nil {
			return fmt.Errorf("failed to encode collection: %w", err)
		}
		encoded[i] = string(b)
	}

	// id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags
	args := append([]any{1, now, now * 1000, now * 1000, 11, 0, 0, 0}, encoded...)
	args = append(args, "{}")
	_, err := db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
	return err
}
