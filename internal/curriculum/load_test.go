package curriculum

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validDocument() map[string]any {
	return map[string]any{
		"meta": map[string]any{"dialect": "General American", "version": "v1"},
		"alphabet": map[string]any{
			"letters": []any{
				map[string]any{"id": "letter_a", "upper": "A", "lower": "a", "order": float64(1)},
			},
			"confusables": []any{},
		},
		"items": []any{
			map[string]any{
				"id":       "sound_ae",
				"type":     "sound",
				"ipa":      "/æ/",
				"examples": []any{map[string]any{"word": "apple"}},
			},
		},
	}
}

func writeDocument(t *testing.T, doc any) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	path := filepath.Join(t.TempDir(), "curriculum.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func TestLoadValidCurriculum(t *testing.T) {
	cur, err := Load(writeDocument(t, validDocument()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cur.Meta.Dialect != "General American" || cur.Meta.Version != "v1" {
		t.Errorf("meta round-trip mismatch: %+v", cur.Meta)
	}
	if len(cur.Alphabet.Letters) != 1 || cur.Alphabet.Letters[0].ID != "letter_a" {
		t.Errorf("alphabet round-trip mismatch: %+v", cur.Alphabet.Letters)
	}
	if len(cur.Items) != 1 || cur.Items[0].ItemID() != "sound_ae" {
		t.Fatalf("items round-trip mismatch: %+v", cur.Items)
	}

	sounds := cur.SoundItems()
	if len(sounds) != 1 {
		t.Fatalf("expected 1 sound item, got %d", len(sounds))
	}
	if sounds[0].Graphemes == nil {
		t.Error("graphemes should be normalized to an empty list")
	}
	if len(cur.PatternItems()) != 0 {
		t.Error("expected no pattern items")
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curriculum.json")
	if err := os.WriteFile(path, []byte("{ invalid json }"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "JSON") {
		t.Errorf("error should mention JSON: %v", err)
	}
}

func TestLoadRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(doc map[string]any)
		kind    error
		mention string
	}{
		{
			name:    "missing meta",
			mutate:  func(doc map[string]any) { delete(doc, "meta") },
			kind:    ErrMissingField,
			mention: "meta",
		},
		{
			name:    "missing alphabet",
			mutate:  func(doc map[string]any) { delete(doc, "alphabet") },
			kind:    ErrMissingField,
			mention: "alphabet",
		},
		{
			name:    "missing items",
			mutate:  func(doc map[string]any) { delete(doc, "items") },
			kind:    ErrMissingField,
			mention: "items",
		},
		{
			name: "meta missing dialect",
			mutate: func(doc map[string]any) {
				doc["meta"] = map[string]any{"version": "v1"}
			},
			kind:    ErrMissingField,
			mention: "dialect",
		},
		{
			name: "letters not an array",
			mutate: func(doc map[string]any) {
				doc["alphabet"] = map[string]any{"letters": "abc"}
			},
			kind:    ErrTypeMismatch,
			mention: "alphabet.letters",
		},
		{
			name: "letter missing order",
			mutate: func(doc map[string]any) {
				doc["alphabet"].(map[string]any)["letters"] = []any{
					map[string]any{"id": "letter_a", "upper": "A", "lower": "a"},
				}
			},
			kind:    ErrMissingField,
			mention: "order",
		},
		{
			name: "letter order not integer",
			mutate: func(doc map[string]any) {
				doc["alphabet"].(map[string]any)["letters"] = []any{
					map[string]any{"id": "letter_a", "upper": "A", "lower": "a", "order": 1.5},
				}
			},
			kind:    ErrTypeMismatch,
			mention: "order",
		},
		{
			name: "confusable missing right",
			mutate: func(doc map[string]any) {
				doc["alphabet"].(map[string]any)["confusables"] = []any{
					map[string]any{"id": "conf_bd", "left": "b"},
				}
			},
			kind:    ErrMissingField,
			mention: "right",
		},
		{
			name: "item missing id",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{"type": "sound", "examples": []any{map[string]any{"word": "test"}}},
				}
			},
			kind:    ErrMissingField,
			mention: "id",
		},
		{
			name: "item missing type",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{"id": "test", "examples": []any{map[string]any{"word": "test"}}},
				}
			},
			kind:    ErrMissingField,
			mention: "type",
		},
		{
			name: "invalid item type",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{"id": "test", "type": "bogus", "examples": []any{map[string]any{"word": "test"}}},
				}
			},
			kind:    ErrInvalidEnum,
			mention: "bogus",
		},
		{
			name: "sound item missing examples",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{map[string]any{"id": "test", "type": "sound"}}
			},
			kind:    ErrMissingField,
			mention: "examples",
		},
		{
			name: "empty examples list",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{map[string]any{"id": "test", "type": "sound", "examples": []any{}}}
			},
			kind:    ErrEmptyRequired,
			mention: "empty",
		},
		{
			name: "example with empty word",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{"id": "test", "type": "sound", "examples": []any{map[string]any{"word": ""}}},
				}
			},
			kind:    ErrEmptyRequired,
			mention: "examples[0].word",
		},
		{
			name: "duplicate item ids",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{"id": "same_id", "type": "sound", "examples": []any{map[string]any{"word": "one"}}},
					map[string]any{"id": "same_id", "type": "sound", "examples": []any{map[string]any{"word": "two"}}},
				}
			},
			kind:    ErrDuplicateID,
			mention: "duplicate",
		},
		{
			name: "minimal pair missing left",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{"id": "pair", "type": "minimal_pair_sound", "right": map[string]any{"word": "ship"}},
				}
			},
			kind:    ErrMissingField,
			mention: "left",
		},
		{
			name: "minimal pair left missing word",
			mutate: func(doc map[string]any) {
				doc["items"] = []any{
					map[string]any{
						"id": "pair", "type": "minimal_pair_sound",
						"left":  map[string]any{"ipa": "/s/"},
						"right": map[string]any{"word": "ship"},
					},
				}
			},
			kind:    ErrMissingField,
			mention: "word",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDocument()
			tc.mutate(doc)

			_, err := Load(writeDocument(t, doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tc.kind) {
				t.Errorf("expected error kind %v, got %v", tc.kind, err)
			}
			if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.mention)) {
				t.Errorf("error %q should mention %q", err.Error(), tc.mention)
			}
		})
	}
}

func TestDuplicateIDErrorNamesIndexAndID(t *testing.T) {
	doc := validDocument()
	doc["items"] = []any{
		map[string]any{"id": "same_id", "type": "sound", "examples": []any{map[string]any{"word": "one"}}},
		map[string]any{"id": "same_id", "type": "sound", "examples": []any{map[string]any{"word": "two"}}},
	}

	err := Validate(doc)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
	if schemaErr.Path != "items[1]" {
		t.Errorf("duplicate should be reported at the second occurrence, got path %q", schemaErr.Path)
	}
	if !strings.Contains(schemaErr.Reason, "same_id") {
		t.Errorf("reason should name the id: %q", schemaErr.Reason)
	}
}

func TestValidateFailFastReportsFirstViolation(t *testing.T) {
	// Both items are broken; only the first (in array order) is reported.
	doc := validDocument()
	doc["items"] = []any{
		map[string]any{"id": "first", "type": "bogus"},
		map[string]any{"id": "second", "type": "sound", "examples": []any{}},
	}

	err := Validate(doc)
	if !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected first violation (invalid enum), got %v", err)
	}
}
