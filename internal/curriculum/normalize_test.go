package curriculum

import (
	"reflect"
	"testing"
)

func TestNormalizeFillsItemDefaults(t *testing.T) {
	doc := validDocument()
	normalized := Normalize(doc)

	item := normalized["items"].([]any)[0].(map[string]any)
	if graphemes, ok := item["graphemes"].([]any); !ok || len(graphemes) != 0 {
		t.Errorf("graphemes should default to an empty list, got %v", item["graphemes"])
	}
	if notes, ok := item["notes"].(string); !ok || notes != "" {
		t.Errorf("notes should default to an empty string, got %v", item["notes"])
	}
}

func TestNormalizeWrapsStringGraphemes(t *testing.T) {
	doc := validDocument()
	doc["items"].([]any)[0].(map[string]any)["graphemes"] = "ai"

	normalized := Normalize(doc)

	graphemes := normalized["items"].([]any)[0].(map[string]any)["graphemes"]
	if !reflect.DeepEqual(graphemes, []any{"ai"}) {
		t.Errorf("string graphemes should wrap into a one-element list, got %v", graphemes)
	}
}

func TestNormalizeAddsConfusables(t *testing.T) {
	doc := validDocument()
	delete(doc["alphabet"].(map[string]any), "confusables")

	normalized := Normalize(doc)

	confusables, ok := normalized["alphabet"].(map[string]any)["confusables"].([]any)
	if !ok || len(confusables) != 0 {
		t.Errorf("confusables should default to an empty list, got %v",
			normalized["alphabet"].(map[string]any)["confusables"])
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	doc := validDocument()
	delete(doc["alphabet"].(map[string]any), "confusables")

	Normalize(doc)

	if _, present := doc["alphabet"].(map[string]any)["confusables"]; present {
		t.Error("Normalize mutated its input alphabet section")
	}
	item := doc["items"].([]any)[0].(map[string]any)
	if _, present := item["graphemes"]; present {
		t.Error("Normalize mutated its input item")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	doc := validDocument()
	once := Normalize(doc)
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalizing twice differs from normalizing once:\nonce:  %v\ntwice: %v", once, twice)
	}
}
