// Package identity derives the stable identifiers that make regenerated
// Anki packages re-importable: deck IDs, model (note type) IDs, and per-note
// GUIDs.
//
// Every identifier is a pure function of a fixed namespace string plus a
// content key, so regenerating the package from scratch — with edits,
// additions, or reorderings of the curriculum — reproduces the same
// identities and never duplicates study records in Anki.
//
// # Stability contract
//
// The namespace literals in this package must NEVER change once a package
// built from them has been imported. Identity is derived, not stored;
// changing a namespace silently orphans every previously created note's
// scheduling state. Tests assert the literal namespace values and known
// GUID outputs to prevent drift.
package identity
