package media

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// AudioFilename derives the deterministic filename for a spoken word.
// The item id, word, voice, and rate are all part of the name so a change
// to any generation parameter yields a fresh file.
func AudioFilename(itemID, word, voice string, rate float64) string {
	if voice == "" {
		voice = "default"
	}
	return fmt.Sprintf("audio_%s_%s_%s_r%.2f.mp3", itemID, safeWord(word), voice, rate)
}

// ImageFilename derives the deterministic filename for an illustrated word.
// styleVersion versions the image prompt, so reworked styles regenerate.
func ImageFilename(word, styleVersion string) string {
	if styleVersion == "" {
		styleVersion = "v1"
	}
	return fmt.Sprintf("img_%s_%s.png", safeWord(word), styleVersion)
}

// safeWord lowercases a word and replaces every non-alphanumeric rune with
// an underscore. Input is NFC-normalized first so composed and decomposed
// spellings of the same word map to the same filename.
func safeWord(word string) string {
	normalized := norm.NFC.String(strings.ToLower(word))
	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// FileHash computes the hex-encoded SHA-256 hash of a file, for manifest
// change detection.
func FileHash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
