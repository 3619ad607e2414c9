package deck

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"phonodeck/internal/alphaorder"
	"phonodeck/internal/curriculum"
	"phonodeck/internal/identity"
	"phonodeck/internal/media"
)

// Note is one assembled note: a stable GUID, the model it instantiates, and
// its field values in model field order.
type Note struct {
	GUID    string
	ModelID int64
	Fields  []string
}

// Deck is one subdeck with its assembled notes in curriculum order.
type Deck struct {
	ID    int64
	Name  string
	Notes []Note
}

// Plan is the complete assembly output handed to the package writer: every
// note model, the populated subdecks in fixed order, and the media files the
// notes reference.
type Plan struct {
	Models     []Model
	Decks      []Deck
	MediaFiles []string
}

// NoteCount returns the total number of notes across all subdecks.
func (p *Plan) NoteCount() int {
	total := 0
	for _, d := range p.Decks {
		total += len(d.Notes)
	}
	return total
}

// Options controls assembly.
type Options struct {
	// WindowSize is the alphabet-order prompt length. Zero means the
	// default window.
	WindowSize int

	// Media resolves words to local audio files. Nil leaves every
	// recording field empty, which is valid: templates render without
	// audio until the files exist.
	Media *media.Resolver
}

// Build assembles a validated curriculum into a Plan. Assembly never fails:
// the curriculum is already validated, and missing media degrades to empty
// recording fields.
func Build(c *curriculum.Curriculum, opts Options) *Plan {
	window := opts.WindowSize
	if window <= 0 {
		window = alphaorder.DefaultWindowSize
	}

	b := &builder{resolver: opts.Media, seen: make(map[string]bool)}

	sounds := Deck{ID: identity.DeckID(identity.DeckNameSounds), Name: identity.DeckNameSounds}
	for _, item := range c.SoundItems() {
		sounds.Notes = append(sounds.Notes, b.soundNote(item))
	}

	spellings := Deck{ID: identity.DeckID(identity.DeckNameSpellings), Name: identity.DeckNameSpellings}
	for _, item := range c.PatternItems() {
		spellings.Notes = append(spellings.Notes, b.patternNote(item))
	}

	letterCase := Deck{ID: identity.DeckID(identity.DeckNameAlphabetCase), Name: identity.DeckNameAlphabetCase}
	for _, letter := range c.Alphabet.Letters {
		letterCase.Notes = append(letterCase.Notes, b.letterCaseNote(letter))
	}

	order := Deck{ID: identity.DeckID(identity.DeckNameAlphabetOrder), Name: identity.DeckNameAlphabetOrder}
	for entry := range alphaorder.Sequence(c.Alphabet.Letters, window) {
		order.Notes = append(order.Notes, b.alphabetOrderNote(entry))
	}

	confusables := Deck{ID: identity.DeckID(identity.DeckNameVisualConfusables), Name: identity.DeckNameVisualConfusables}
	for _, conf := range c.Alphabet.Confusables {
		confusables.Notes = append(confusables.Notes, b.confusableNote(conf))
	}

	pairs := Deck{ID: identity.DeckID(identity.DeckNameMinimalPairs), Name: identity.DeckNameMinimalPairs}
	for _, item := range c.MinimalPairItems() {
		pairs.Notes = append(pairs.Notes, b.minimalPairNote(item))
	}

	return &Plan{
		Models:     Models(),
		Decks:      []Deck{sounds, spellings, letterCase, order, confusables, pairs},
		MediaFiles: b.mediaFiles,
	}
}

type builder struct {
	resolver   *media.Resolver
	mediaFiles []string
	seen       map[string]bool
}

// audioRef resolves a word to a local audio file and returns the Anki sound
// reference for it, collecting the file for packaging. Empty when the file
// does not exist or no resolver is configured.
func (b *builder) audioRef(itemID, word string) string {
	if b.resolver == nil || word == "" {
		return ""
	}
	path, found := b.resolver.ResolveAudio(itemID, word)
	if !found {
		return ""
	}
	if !b.seen[path] {
		b.seen[path] = true
		b.mediaFiles = append(b.mediaFiles, path)
	}
	return fmt.Sprintf("[sound:%s]", filepath.Base(path))
}

func (b *builder) soundNote(item curriculum.SoundItem) Note {
	frontExample := ""
	if len(item.Examples) > 0 {
		frontExample = item.Examples[0].Word
	}
	words, refs, frontAudio := b.exampleFields(item.ID, item.Examples)

	label := item.SoundLabel
	if label == "" {
		label = item.IPA
	}

	return Note{
		GUID:    identity.NoteGUID(identity.NamespaceSound, item.ID),
		ModelID: identity.ModelIDSound,
		Fields: []string{
			item.IPA,
			label,
			strings.Join(item.Graphemes, ", "),
			frontExample,
			words,
			item.Notes,
			frontAudio,
			refs,
		},
	}
}

func (b *builder) patternNote(item curriculum.PatternItem) Note {
	frontExample := ""
	if len(item.Examples) > 0 {
		frontExample = item.Examples[0].Word
	}
	words, refs, frontAudio := b.exampleFields(item.ID, item.Examples)

	grapheme := ""
	if len(item.Graphemes) > 0 {
		grapheme = item.Graphemes[0]
	}

	return Note{
		GUID:    identity.NoteGUID(identity.NamespacePattern, item.ID),
		ModelID: identity.ModelIDPattern,
		Fields: []string{
			grapheme,
			item.IPA,
			frontExample,
			words,
			item.Notes,
			frontAudio,
			refs,
		},
	}
}

// exampleFields derives the joined word list, resolved audio references, and
// the front example's audio reference for a sound or pattern item.
func (b *builder) exampleFields(itemID string, examples []curriculum.Example) (words string, refs string, frontAudio string) {
	list := make([]string, len(examples))
	resolved := make([]string, 0, len(examples))
	for i, ex := range examples {
		list[i] = ex.Word
		ref := b.audioRef(itemID, ex.Word)
		if ref != "" {
			resolved = append(resolved, ref)
		}
		if i == 0 {
			frontAudio = ref
		}
	}
	return strings.Join(list, ", "), strings.Join(resolved, " "), frontAudio
}

func (b *builder) letterCaseNote(letter curriculum.Letter) Note {
	return Note{
		GUID:    identity.NoteGUID(identity.NamespaceLetterCase, letter.ID),
		ModelID: identity.ModelIDLetterCase,
		Fields: []string{
			letter.Upper,
			letter.Lower,
			letter.Name,
			b.audioRef(letter.ID, letter.Name),
		},
	}
}

func (b *builder) confusableNote(conf curriculum.Confusable) Note {
	return Note{
		GUID:    identity.NoteGUID(identity.NamespaceVisualConfusable, conf.ID),
		ModelID: identity.ModelIDVisualConfusable,
		Fields:  []string{conf.Left, conf.Right, conf.Notes, conf.Hint},
	}
}

func (b *builder) alphabetOrderNote(entry alphaorder.Entry) Note {
	return Note{
		GUID:    identity.NoteGUID(identity.NamespaceAlphabetOrder, entry.ID),
		ModelID: identity.ModelIDAlphabetOrder,
		Fields:  []string{entry.Prompt, entry.Answer, strconv.Itoa(entry.Position)},
	}
}

func (b *builder) minimalPairNote(item curriculum.MinimalPairItem) Note {
	thirdWord, thirdIPA, thirdRef := "", "", ""
	if item.Third != nil {
		thirdWord = item.Third.Word
		thirdIPA = item.Third.IPA
		thirdRef = b.audioRef(item.ID, thirdWord)
	}
	compare := ""
	if item.CompareSecondToThird {
		compare = "yes"
	}

	return Note{
		GUID:    identity.NoteGUID(identity.NamespaceMinimalPair, item.ID),
		ModelID: identity.ModelIDMinimalPair,
		Fields: []string{
			item.Left.Word,
			b.audioRef(item.ID, item.Left.Word),
			item.Left.IPA,
			item.Right.Word,
			b.audioRef(item.ID, item.Right.Word),
			item.Right.IPA,
			thirdWord,
			thirdRef,
			thirdIPA,
			compare,
			item.Notes,
		},
	}
}
