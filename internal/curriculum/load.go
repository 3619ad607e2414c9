package curriculum

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads, validates, normalizes, and decodes a curriculum file.
// Failures classify under the package sentinel errors: a missing file is
// ErrNotFound, unparseable bytes are ErrMalformedInput, and schema
// violations surface as *SchemaError values.
func Load(path string) (*Curriculum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	cur, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cur, nil
}

// Parse validates and decodes raw curriculum bytes.
func Parse(data []byte) (*Curriculum, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if err := Validate(root); err != nil {
		return nil, err
	}

	doc := Normalize(root.(map[string]any))
	return decode(doc), nil
}

// decode builds the typed model from a validated and normalized tree.
// Shape checks have already run, so lookups assert freely.
func decode(doc map[string]any) *Curriculum {
	meta := doc["meta"].(map[string]any)
	alphabet := doc["alphabet"].(map[string]any)

	cur := &Curriculum{
		Meta: Meta{
			Dialect: stringField(meta, "dialect"),
			Version: stringField(meta, "version"),
		},
	}

	for _, raw := range alphabet["letters"].([]any) {
		letter := raw.(map[string]any)
		order, _ := intValue(letter["order"])
		cur.Alphabet.Letters = append(cur.Alphabet.Letters, Letter{
			ID:    letter["id"].(string),
			Upper: stringField(letter, "upper"),
			Lower: stringField(letter, "lower"),
			Name:  stringField(letter, "name"),
			Order: order,
		})
	}

	for _, raw := range alphabet["confusables"].([]any) {
		confusable := raw.(map[string]any)
		cur.Alphabet.Confusables = append(cur.Alphabet.Confusables, Confusable{
			ID:    confusable["id"].(string),
			Left:  stringField(confusable, "left"),
			Right: stringField(confusable, "right"),
			Notes: stringField(confusable, "notes"),
			Hint:  stringField(confusable, "hint"),
		})
	}

	for _, raw := range doc["items"].([]any) {
		cur.Items = append(cur.Items, decodeItem(raw.(map[string]any)))
	}

	return cur
}

func decodeItem(item map[string]any) Item {
	id := item["id"].(string)
	notes := stringField(item, "notes")

	switch item["type"].(string) {
	case "sound":
		return SoundItem{
			ID:         id,
			IPA:        stringField(item, "ipa"),
			SoundLabel: stringField(item, "sound_label"),
			Graphemes:  stringList(item["graphemes"]),
			Examples:   decodeExamples(item["examples"]),
			Notes:      notes,
		}
	case "pattern":
		return PatternItem{
			ID:         id,
			IPA:        stringField(item, "ipa"),
			SoundLabel: stringField(item, "sound_label"),
			Graphemes:  stringList(item["graphemes"]),
			Examples:   decodeExamples(item["examples"]),
			Notes:      notes,
		}
	default:
		pair := MinimalPairItem{
			ID:    id,
			Left:  decodePairWord(item["left"]),
			Right: decodePairWord(item["right"]),
			Notes: notes,
		}
		if third, ok := item["third"].(map[string]any); ok {
			word := decodePairWordMap(third)
			pair.Third = &word
		}
		if compare, ok := item["compare_2_to_3"].(bool); ok {
			pair.CompareSecondToThird = compare
		}
		return pair
	}
}

func decodeExamples(raw any) []Example {
	list := raw.([]any)
	examples := make([]Example, 0, len(list))
	for _, entry := range list {
		example := entry.(map[string]any)
		examples = append(examples, Example{
			Word: example["word"].(string),
			IPA:  stringField(example, "ipa"),
		})
	}
	return examples
}

func decodePairWord(raw any) PairWord {
	return decodePairWordMap(raw.(map[string]any))
}

func decodePairWordMap(obj map[string]any) PairWord {
	return PairWord{
		Word: stringField(obj, "word"),
		IPA:  stringField(obj, "ipa"),
	}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func stringList(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
