package curriculum

import (
	"fmt"
	"math"
	"strings"
)

// itemKinds is the closed set of accepted item type values.
var itemKinds = []string{"sound", "pattern", "minimal_pair_sound"}

// Validate checks a raw parsed JSON tree against the curriculum schema.
// It returns nil when the tree conforms, or the first violation found in
// document order as a *SchemaError.
func Validate(root any) error {
	doc, ok := root.(map[string]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, "", "curriculum root must be an object, got %s", kindOf(root))
	}

	for _, section := range []string{"meta", "alphabet", "items"} {
		if _, present := doc[section]; !present {
			return schemaErr(ErrMissingField, "", "missing required section %q", section)
		}
	}

	if err := validateMeta(doc["meta"]); err != nil {
		return err
	}
	if err := validateAlphabet(doc["alphabet"]); err != nil {
		return err
	}
	return validateItems(doc["items"])
}

func validateMeta(raw any) error {
	meta, ok := raw.(map[string]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, "meta", "expected object, got %s", kindOf(raw))
	}
	for _, field := range []string{"dialect", "version"} {
		if meta[field] == nil {
			return schemaErr(ErrMissingField, "meta", "missing required field %q", field)
		}
	}
	return nil
}

func validateAlphabet(raw any) error {
	alphabet, ok := raw.(map[string]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, "alphabet", "expected object, got %s", kindOf(raw))
	}

	rawLetters, present := alphabet["letters"]
	if !present {
		return schemaErr(ErrMissingField, "alphabet", "missing required field %q", "letters")
	}
	letters, ok := rawLetters.([]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, "alphabet.letters", "expected array, got %s", kindOf(rawLetters))
	}
	for i, letter := range letters {
		if err := validateLetter(letter, fmt.Sprintf("alphabet.letters[%d]", i)); err != nil {
			return err
		}
	}

	if rawConfusables, present := alphabet["confusables"]; present {
		confusables, ok := rawConfusables.([]any)
		if !ok {
			return schemaErr(ErrTypeMismatch, "alphabet.confusables", "expected array, got %s", kindOf(rawConfusables))
		}
		for i, confusable := range confusables {
			if err := validateConfusable(confusable, fmt.Sprintf("alphabet.confusables[%d]", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateLetter(raw any, path string) error {
	letter, ok := raw.(map[string]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, path, "expected object, got %s", kindOf(raw))
	}
	for _, field := range []string{"id", "upper", "lower", "order"} {
		if letter[field] == nil {
			return schemaErr(ErrMissingField, path, "missing required field %q", field)
		}
	}
	if err := requireNonEmptyString(letter["id"], path+".id"); err != nil {
		return err
	}
	if _, ok := intValue(letter["order"]); !ok {
		return schemaErr(ErrTypeMismatch, path+".order", "must be an integer, got %s", kindOf(letter["order"]))
	}
	return nil
}

func validateConfusable(raw any, path string) error {
	confusable, ok := raw.(map[string]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, path, "expected object, got %s", kindOf(raw))
	}
	for _, field := range []string{"id", "left", "right"} {
		if confusable[field] == nil {
			return schemaErr(ErrMissingField, path, "missing required field %q", field)
		}
	}
	return requireNonEmptyString(confusable["id"], path+".id")
}

func validateItems(raw any) error {
	items, ok := raw.([]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, "items", "expected array, got %s", kindOf(raw))
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := validateItem(item, i); err != nil {
			return err
		}
		id := item.(map[string]any)["id"].(string)
		if _, dup := seen[id]; dup {
			return schemaErr(ErrDuplicateID, fmt.Sprintf("items[%d]", i), "duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateItem(raw any, index int) error {
	path := fmt.Sprintf("items[%d]", index)

	item, ok := raw.(map[string]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, path, "expected object, got %s", kindOf(raw))
	}

	if item["id"] == nil {
		return schemaErr(ErrMissingField, path, "missing required field %q", "id")
	}
	if err := requireNonEmptyString(item["id"], path+".id"); err != nil {
		return err
	}
	id := item["id"].(string)
	path = fmt.Sprintf("items[%d] (id=%s)", index, id)

	if item["type"] == nil {
		return schemaErr(ErrMissingField, path, "missing required field %q", "type")
	}
	kind, ok := item["type"].(string)
	if !ok {
		return schemaErr(ErrTypeMismatch, path+".type", "expected string, got %s", kindOf(item["type"]))
	}

	switch kind {
	case "sound", "pattern":
		return validateExamples(item, path)
	case "minimal_pair_sound":
		return validateMinimalPair(item, path)
	default:
		return schemaErr(ErrInvalidEnum, path, "invalid type %q: must be one of %s", kind, strings.Join(itemKinds, ", "))
	}
}

func validateExamples(item map[string]any, path string) error {
	raw, present := item["examples"]
	if !present || raw == nil {
		return schemaErr(ErrMissingField, path, "missing required field %q", "examples")
	}
	examples, ok := raw.([]any)
	if !ok {
		return schemaErr(ErrTypeMismatch, path+".examples", "expected array, got %s", kindOf(raw))
	}
	if len(examples) == 0 {
		return schemaErr(ErrEmptyRequired, path, "examples list cannot be empty")
	}
	for i, example := range examples {
		examplePath := fmt.Sprintf("%s.examples[%d]", path, i)
		obj, ok := example.(map[string]any)
		if !ok {
			return schemaErr(ErrTypeMismatch, examplePath, "expected object, got %s", kindOf(example))
		}
		if obj["word"] == nil {
			return schemaErr(ErrMissingField, examplePath, "missing required field %q", "word")
		}
		if err := requireNonEmptyString(obj["word"], examplePath+".word"); err != nil {
			return err
		}
	}
	return nil
}

func validateMinimalPair(item map[string]any, path string) error {
	for _, field := range []string{"left", "right"} {
		raw, present := item[field]
		if !present || raw == nil {
			return schemaErr(ErrMissingField, path, "missing required field %q", field)
		}
		obj, ok := raw.(map[string]any)
		if !ok {
			return schemaErr(ErrTypeMismatch, path+"."+field, "expected object, got %s", kindOf(raw))
		}
		if _, present := obj["word"]; !present {
			return schemaErr(ErrMissingField, path+"."+field, "missing required field %q", "word")
		}
	}
	return nil
}

func requireNonEmptyString(raw any, path string) error {
	s, ok := raw.(string)
	if !ok {
		return schemaErr(ErrTypeMismatch, path, "expected string, got %s", kindOf(raw))
	}
	if s == "" {
		return schemaErr(ErrEmptyRequired, path, "must not be empty")
	}
	return nil
}

// intValue reports the integer value of a parsed JSON number. encoding/json
// decodes every number as float64, so integrality is checked on the value.
func intValue(raw any) (int, bool) {
	f, ok := raw.(float64)
	if !ok || math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func kindOf(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", raw)
	}
}
