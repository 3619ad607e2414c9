package alphaorder

import (
	"fmt"
	"iter"
	"strings"

	"phonodeck/internal/curriculum"
)

// DefaultWindowSize is the number of letters shown before the blank.
const DefaultWindowSize = 4

// blankMarker ends every prompt in place of the answer letter.
const blankMarker = "__"

// Entry is one generated "what comes next?" drill.
type Entry struct {
	ID       string
	Prompt   string
	Answer   string
	Position int
}

// Sequence lazily yields one entry per letter from index window onward in
// the order-sorted alphabet: the window letters before it form the prompt
// and the letter itself is the answer. Fewer than window+1 letters yield
// nothing.
func Sequence(letters []curriculum.Letter, window int) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if window <= 0 {
			window = DefaultWindowSize
		}
		sorted := curriculum.Alphabet{Letters: letters}.LettersInOrder()

		for i := window; i < len(sorted); i++ {
			answer := sorted[i]

			parts := make([]string, 0, window+1)
			for _, letter := range sorted[i-window : i] {
				parts = append(parts, letter.Upper)
			}
			parts = append(parts, blankMarker)

			// Order is mandatory in validated input; the i+1 fallback only
			// covers letters constructed outside the loader.
			position := answer.Order
			if position == 0 {
				position = i + 1
			}

			entry := Entry{
				ID:       fmt.Sprintf("alphabet_order_%d", position),
				Prompt:   strings.Join(parts, "  "),
				Answer:   answer.Upper,
				Position: position,
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Entries materializes Sequence into a slice.
func Entries(letters []curriculum.Letter, window int) []Entry {
	var out []Entry
	for entry := range Sequence(letters, window) {
		out = append(out, entry)
	}
	return out
}
