// Package deck assembles a validated curriculum into an in-memory plan of
// Anki note models, subdecks, and notes.
//
// Assembly is deterministic: note GUIDs, model IDs, and deck IDs all come
// from the identity package, and notes appear in curriculum document order.
// Building the same curriculum twice yields byte-identical plans, which is
// what makes repeated .apkg exports re-importable without duplicates.
package deck
