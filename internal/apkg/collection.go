package apkg

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"phonodeck/internal/deck"
)

// buildEpoch is the fixed Unix timestamp stamped on every row. A constant
// epoch keeps the database rows identical across runs; Anki only uses these
// values for display and sync bookkeeping.
const buildEpoch int64 = 1_700_000_000

// fieldSeparator joins note field values in the flds column.
const fieldSeparator = "\x1f"

// collectionVersion is the collection schema version Anki expects in col.ver.
const collectionVersion = 11

// noteID derives a stable row ID from a note GUID. SHA-1 of the GUID,
// first 8 bytes big-endian, sign bit cleared.
func noteID(guid string) int64 {
	sum := sha1.Sum([]byte(guid))
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}

// cardID derives a stable row ID for one card of a note.
func cardID(guid string, ord int) int64 {
	return noteID(fmt.Sprintf("%s:card:%d", guid, ord))
}

// fieldChecksum computes Anki's note checksum: the integer value of the
// first 8 hex digits of the SHA-1 of the first field.
func fieldChecksum(firstField string) int64 {
	sum := sha1.Sum([]byte(firstField))
	digits := hex.EncodeToString(sum[:])[:8]
	value, _ := strconv.ParseInt(digits, 16, 64)
	return value
}

var (
	sectionPattern = regexp.MustCompile(`(?s)\{\{[#^]([^}]+)\}\}(.*?)\{\{/([^}]+)\}\}`)
	fieldPattern   = regexp.MustCompile(`\{\{([^#^/][^}]*)\}\}`)
)

// templateProducesCard reports whether a card template renders a non-empty
// question for the given field values: conditional sections gated on an
// empty field collapse, and at least one remaining field reference must be
// non-empty. Mirrors how Anki decides which cards a note generates.
func templateProducesCard(question string, fields map[string]string) bool {
	rendered := question
	for {
		loc := sectionPattern.FindStringSubmatchIndex(rendered)
		if loc == nil {
			break
		}
		name := strings.TrimSpace(rendered[loc[2]:loc[3]])
		inner := rendered[loc[4]:loc[5]]
		open := rendered[loc[0]+2 : loc[0]+3]

		keep := fields[name] != ""
		if open == "^" {
			keep = !keep
		}
		replacement := ""
		if keep {
			replacement = inner
		}
		rendered = rendered[:loc[0]] + replacement + rendered[loc[1]:]
	}

	for _, match := range fieldPattern.FindAllStringSubmatch(rendered, -1) {
		name := strings.TrimSpace(match[1])
		if name == "FrontSide" || strings.Contains(name, ":") {
			continue
		}
		if fields[name] != "" {
			return true
		}
	}
	return false
}

// cardOrds returns the template ordinals a note generates cards for.
func cardOrds(model deck.Model, fieldValues []string) []int {
	byName := make(map[string]string, len(model.Fields))
	for i, name := range model.Fields {
		if i < len(fieldValues) {
			byName[name] = fieldValues[i]
		}
	}

	var ords []int
	for ord, tmpl := range model.Templates {
		if templateProducesCard(tmpl.Question, byName) {
			ords = append(ords, ord)
		}
	}
	return ords
}

// modelsJSON serializes the note models into Anki's col.models blob, keyed
// by model ID.
func modelsJSON(models []deck.Model) (string, error) {
	out := make(map[string]any, len(models))
	for _, m := range models {
		fields := make([]map[string]any, len(m.Fields))
		for i, name := range m.Fields {
			fields[i] = map[string]any{
				"name":   name,
				"ord":    i,
				"sticky": false,
				"rtl":    false,
				"font":   "Arial",
				"size":   20,
				"media":  []any{},
			}
		}

		templates := make([]map[string]any, len(m.Templates))
		req := make([]any, len(m.Templates))
		allFieldOrds := make([]int, len(m.Fields))
		for i := range m.Fields {
			allFieldOrds[i] = i
		}
		for i, t := range m.Templates {
			templates[i] = map[string]any{
				"name":  t.Name,
				"ord":   i,
				"qfmt":  t.Question,
				"afmt":  t.Answer,
				"bqfmt": "",
				"bafmt": "",
				"did":   nil,
			}
			req[i] = []any{i, "any", allFieldOrds}
		}

		out[strconv.FormatInt(m.ID, 10)] = map[string]any{
			"id":        m.ID,
			"name":      m.Name,
			"type":      0,
			"mod":       buildEpoch,
			"usn":       -1,
			"sortf":     0,
			"did":       1,
			"flds":      fields,
			"tmpls":     templates,
			"css":       m.CSS,
			"latexPre":  defaultLatexPre,
			"latexPost": defaultLatexPost,
			"latexsvg":  false,
			"req":       req,
			"tags":      []any{},
			"vers":      []any{},
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal models: %w", err)
	}
	return string(data), nil
}

// decksJSON serializes the subdecks into Anki's col.decks blob, keyed by
// deck ID. The default deck (ID 1) is always present.
func decksJSON(decks []deck.Deck) (string, error) {
	out := map[string]any{
		"1": deckEntry(1, "Default"),
	}
	for _, d := range decks {
		out[strconv.FormatInt(d.ID, 10)] = deckEntry(d.ID, d.Name)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal decks: %w", err)
	}
	return string(data), nil
}

func deckEntry(id int64, name string) map[string]any {
	return map[string]any{
		"id":               id,
		"name":             name,
		"mod":              buildEpoch,
		"usn":              -1,
		"desc":             "",
		"dyn":              0,
		"conf":             1,
		"collapsed":        false,
		"browserCollapsed": false,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
		"extendNew":        0,
		"extendRev":        0,
	}
}

// confJSON is the col.conf blob: collection-level preferences.
func confJSON(models []deck.Model) (string, error) {
	curModel := ""
	if len(models) > 0 {
		curModel = strconv.FormatInt(models[0].ID, 10)
	}
	data, err := json.Marshal(map[string]any{
		"activeDecks":   []int{1},
		"curDeck":       1,
		"curModel":      curModel,
		"newSpread":     0,
		"collapseTime":  1200,
		"timeLim":       0,
		"estTimes":      true,
		"dueCounts":     true,
		"nextPos":       1,
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"dayLearnFirst": false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal conf: %w", err)
	}
	return string(data), nil
}

// dconfJSON is the col.dconf blob: the default deck options group.
func dconfJSON() (string, error) {
	data, err := json.Marshal(map[string]any{
		"1": map[string]any{
			"id":       1,
			"name":     "Default",
			"mod":      0,
			"usn":      0,
			"maxTaken": 60,
			"autoplay": true,
			"timer":    0,
			"replayq":  true,
			"dyn":      false,
			"new": map[string]any{
				"bury":          true,
				"delays":        []int{1, 10},
				"initialFactor": 2500,
				"ints":          []int{1, 4, 7},
				"order":         1,
				"perDay":        20,
				"separate":      true,
			},
			"rev": map[string]any{
				"bury":     true,
				"ease4":    1.3,
				"fuzz":     0.05,
				"ivlFct":   1,
				"maxIvl":   36500,
				"minSpace": 1,
				"perDay":   100,
			},
			"lapse": map[string]any{
				"delays":      []int{10},
				"leechAction": 0,
				"leechFails":  8,
				"minInt":      1,
				"mult":        0,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal dconf: %w", err)
	}
	return string(data), nil
}

const defaultLatexPre = `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}
`

const defaultLatexPost = `\end{document}`
