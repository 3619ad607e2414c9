// Package curriculum loads, validates, and normalizes the curriculum
// document that drives deck generation.
//
// Validation runs over the raw parsed JSON tree in a single fail-fast pass:
// the first violation aborts the load with a path-qualified error such as
// "items[3] (id=sound_ae).examples[0].word: must not be empty". No partial
// curriculum is ever returned.
//
// Normalization fills optional-field defaults (graphemes, notes,
// confusables) on the validated tree without mutating it, then the tree is
// decoded into the typed Curriculum model. Item variants are a tagged sum
// (SoundItem, PatternItem, MinimalPairItem) so downstream assembly can match
// exhaustively instead of re-checking type strings.
package curriculum
