package identity

import "crypto/sha256"

// DeckID derives a stable positive deck ID from a subdeck display name.
// Anki can assign deck IDs itself, but deriving them keeps the value stable
// across regenerations.
func DeckID(subdeckName string) int64 {
	return hashToID(product + ":deck:" + subdeckName)
}

// NoteGUID derives the stable GUID for a note from its namespace and
// curriculum item id.
//
// Guarantees:
//  1. The same (namespace, itemID) pair always yields the same GUID,
//     across runs and platforms.
//  2. Different namespaces with the same itemID yield different GUIDs.
//  3. The output is non-empty and alphanumeric, as Anki requires.
//
// SHA-256 rather than MD5 keeps collision risk negligible for arbitrary
// user-supplied item ids.
func NoteGUID(ns Namespace, itemID string) string {
	sum := sha256.Sum256([]byte(product + ":" + string(ns) + ":" + itemID))
	return tokenFromDigest(sum[:8])
}
