package curriculum

import "sort"

// ItemKind tags the variant of a curriculum item.
type ItemKind string

const (
	KindSound       ItemKind = "sound"
	KindPattern     ItemKind = "pattern"
	KindMinimalPair ItemKind = "minimal_pair_sound"
)

// Curriculum is the typed, validated, normalized document.
type Curriculum struct {
	Meta     Meta
	Alphabet Alphabet
	Items    []Item
}

// Meta carries the document's dialect and version tags. Both are opaque
// strings as far as generation is concerned.
type Meta struct {
	Dialect string
	Version string
}

// Alphabet holds the ordered letter list and the visually confusable pairs.
type Alphabet struct {
	Letters     []Letter
	Confusables []Confusable
}

// Letter is one alphabet entry. Order defines the canonical sequence; it
// need not be contiguous, and ties sort by original array position.
type Letter struct {
	ID    string
	Upper string
	Lower string
	Name  string
	Order int
}

// Confusable is a pair of visually similar letters or letter groups.
type Confusable struct {
	ID    string
	Left  string
	Right string
	Notes string
	Hint  string
}

// Example is a single example word on a sound or pattern item.
type Example struct {
	Word string
	IPA  string
}

// Item is the tagged union over the three curriculum item variants.
type Item interface {
	ItemID() string
	Kind() ItemKind
}

// SoundItem is phoneme-first content: one target sound with example words.
type SoundItem struct {
	ID         string
	IPA        string
	SoundLabel string
	Graphemes  []string
	Examples   []Example
	Notes      string
}

func (s SoundItem) ItemID() string { return s.ID }
func (s SoundItem) Kind() ItemKind { return KindSound }

// PatternItem is grapheme-first content: one spelling chunk with example
// words. Same shape as SoundItem but rendered from the opposite direction.
type PatternItem struct {
	ID         string
	IPA        string
	SoundLabel string
	Graphemes  []string
	Examples   []Example
	Notes      string
}

func (p PatternItem) ItemID() string { return p.ID }
func (p PatternItem) Kind() ItemKind { return KindPattern }

// PairWord is one side of a minimal pair.
type PairWord struct {
	Word string
	IPA  string
}

// MinimalPairItem is an AB (optionally ABC) auditory discrimination drill.
type MinimalPairItem struct {
	ID                   string
	Left                 PairWord
	Right                PairWord
	Third                *PairWord
	CompareSecondToThird bool
	Notes                string
}

func (m MinimalPairItem) ItemID() string { return m.ID }
func (m MinimalPairItem) Kind() ItemKind { return KindMinimalPair }

// SoundItems returns the sound items in document order.
func (c *Curriculum) SoundItems() []SoundItem {
	var out []SoundItem
	for _, item := range c.Items {
		if sound, ok := item.(SoundItem); ok {
			out = append(out, sound)
		}
	}
	return out
}

// PatternItems returns the pattern items in document order.
func (c *Curriculum) PatternItems() []PatternItem {
	var out []PatternItem
	for _, item := range c.Items {
		if pattern, ok := item.(PatternItem); ok {
			out = append(out, pattern)
		}
	}
	return out
}

// MinimalPairItems returns the minimal pair items in document order.
func (c *Curriculum) MinimalPairItems() []MinimalPairItem {
	var out []MinimalPairItem
	for _, item := range c.Items {
		if pair, ok := item.(MinimalPairItem); ok {
			out = append(out, pair)
		}
	}
	return out
}

// LettersInOrder returns the letters stable-sorted by Order ascending.
// Duplicate order values keep their original array positions.
func (a Alphabet) LettersInOrder() []Letter {
	letters := make([]Letter, len(a.Letters))
	copy(letters, a.Letters)
	sort.SliceStable(letters, func(i, j int) bool {
		return letters[i].Order < letters[j].Order
	})
	return letters
}
