package curriculum

// Normalize fills optional-field defaults on a validated tree: every item
// gains a graphemes list (a bare string is wrapped into a one-element list)
// and a notes string, and the alphabet section gains an empty confusables
// list when absent.
//
// The input is not mutated; the affected maps and slices are copied. The
// transform is idempotent, so normalizing an already-normalized tree returns
// a value-equal result.
func Normalize(doc map[string]any) map[string]any {
	normalized := make(map[string]any, len(doc))
	for key, value := range doc {
		normalized[key] = value
	}

	if rawItems, ok := doc["items"].([]any); ok {
		items := make([]any, len(rawItems))
		for i, rawItem := range rawItems {
			if item, ok := rawItem.(map[string]any); ok {
				items[i] = normalizeItem(item)
			} else {
				items[i] = rawItem
			}
		}
		normalized["items"] = items
	}

	if alphabet, ok := doc["alphabet"].(map[string]any); ok {
		if _, present := alphabet["confusables"]; !present {
			copied := make(map[string]any, len(alphabet)+1)
			for key, value := range alphabet {
				copied[key] = value
			}
			copied["confusables"] = []any{}
			normalized["alphabet"] = copied
		}
	}

	return normalized
}

func normalizeItem(item map[string]any) map[string]any {
	normalized := make(map[string]any, len(item)+2)
	for key, value := range item {
		normalized[key] = value
	}

	switch graphemes := normalized["graphemes"].(type) {
	case nil:
		normalized["graphemes"] = []any{}
	case string:
		normalized["graphemes"] = []any{graphemes}
	}

	if _, present := normalized["notes"]; !present {
		normalized["notes"] = ""
	}

	return normalized
}
