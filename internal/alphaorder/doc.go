// Package alphaorder derives "what comes next?" drill entries from the
// alphabet letter list.
//
// The entries are generated fresh on every build — they are derived content,
// never stored or user-edited — but each entry's id is a pure function of
// the answer letter's declared order, so the GUIDs derived from it stay
// stable across regenerations.
package alphaorder
