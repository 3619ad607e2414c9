package identity

import "testing"

func TestNoteGUIDDeterministic(t *testing.T) {
	first := NoteGUID(NamespaceSound, "sound_ae")
	second := NoteGUID(NamespaceSound, "sound_ae")
	if first != second {
		t.Errorf("same input produced different GUIDs: %q vs %q", first, second)
	}
}

func TestNoteGUIDNamespaceDiscrimination(t *testing.T) {
	soundGUID := NoteGUID(NamespaceSound, "test_item")
	patternGUID := NoteGUID(NamespacePattern, "test_item")
	if soundGUID == patternGUID {
		t.Errorf("same item id under different namespaces produced identical GUID %q", soundGUID)
	}
}

func TestNoteGUIDItemDiscrimination(t *testing.T) {
	first := NoteGUID(NamespaceSound, "sound_ae")
	second := NoteGUID(NamespaceSound, "sound_b")
	if first == second {
		t.Errorf("different item ids produced identical GUID %q", first)
	}
}

func TestNoteGUIDRegressionValues(t *testing.T) {
	// Recorded from a known-good run. If these change, every previously
	// imported package loses its scheduling state on re-import.
	cases := []struct {
		ns     Namespace
		itemID string
		want   string
	}{
		{NamespaceSound, "sound_ae", "CGeQgyusBST"},
		{NamespacePattern, "pattern_th_voiceless", "EmnACxldShN"},
	}
	for _, tc := range cases {
		if got := NoteGUID(tc.ns, tc.itemID); got != tc.want {
			t.Errorf("NoteGUID(%q, %q) = %q, want %q", tc.ns, tc.itemID, got, tc.want)
		}
	}
}

func TestNoteGUIDAlphanumeric(t *testing.T) {
	guid := NoteGUID(NamespaceSound, "test")
	if guid == "" {
		t.Fatal("GUID is empty")
	}
	for _, r := range guid {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		isLower := r >= 'a' && r <= 'z'
		if !isDigit && !isUpper && !isLower {
			t.Errorf("GUID %q contains non-alphanumeric rune %q", guid, r)
		}
	}
}

func TestDeckIDStability(t *testing.T) {
	first := DeckID(DeckNameSounds)
	second := DeckID(DeckNameSounds)
	if first != second {
		t.Errorf("same subdeck name produced different IDs: %d vs %d", first, second)
	}
}

func TestDeckIDsDistinctAndPositive(t *testing.T) {
	names := []string{
		DeckNameSounds,
		DeckNameSpellings,
		DeckNamePatterns,
		DeckNameAlphabetCase,
		DeckNameAlphabetOrder,
		DeckNameVisualConfusables,
		DeckNameMinimalPairs,
	}
	seen := make(map[int64]string, len(names))
	for _, name := range names {
		id := DeckID(name)
		if id <= 0 {
			t.Errorf("DeckID(%q) = %d, want positive", name, id)
		}
		if prev, dup := seen[id]; dup {
			t.Errorf("DeckID collision between %q and %q: %d", prev, name, id)
		}
		seen[id] = name
	}
}

func TestModelIDsDistinctAndPositive(t *testing.T) {
	ids := map[string]int64{
		"sound":             ModelIDSound,
		"pattern":           ModelIDPattern,
		"letter_case":       ModelIDLetterCase,
		"visual_confusable": ModelIDVisualConfusable,
		"alphabet_order":    ModelIDAlphabetOrder,
		"minimal_pair":      ModelIDMinimalPair,
	}
	seen := make(map[int64]string, len(ids))
	for kind, id := range ids {
		if id <= 0 {
			t.Errorf("model ID for %s = %d, want positive", kind, id)
		}
		if prev, dup := seen[id]; dup {
			t.Errorf("model ID collision between %s and %s: %d", prev, kind, id)
		}
		seen[id] = kind
	}
}

func TestModelIDRegressionValues(t *testing.T) {
	// Frozen values; the namespace strings behind them must never change.
	cases := []struct {
		kind string
		got  int64
		want int64
	}{
		{"sound", ModelIDSound, 8538942491246535273},
		{"pattern", ModelIDPattern, 7604237650294663499},
		{"letter_case", ModelIDLetterCase, 4139417874336891678},
		{"visual_confusable", ModelIDVisualConfusable, 8018692291425458362},
		{"alphabet_order", ModelIDAlphabetOrder, 800989250006624471},
		{"minimal_pair", ModelIDMinimalPair, 7496166228111130592},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("model ID for %s = %d, want %d", tc.kind, tc.got, tc.want)
		}
	}
}

func TestTokenFromDigestZero(t *testing.T) {
	if got := tokenFromDigest(make([]byte, 8)); got != "0" {
		t.Errorf("zero digest encoded as %q, want %q", got, "0")
	}
}
