// Package apkg writes an assembled deck plan to an Anki package file.
//
// An .apkg is a zip archive holding a SQLite database (collection.anki2)
// with the collection, note, and card rows, plus the referenced media files
// under numeric names and a JSON manifest mapping those names back to
// filenames.
//
// The writer is deterministic: note and card row IDs are derived from the
// stable note GUIDs, and every timestamp comes from a single fixed build
// epoch. Writing the same plan twice produces identical rows, so repeated
// exports import cleanly over each other.
package apkg
