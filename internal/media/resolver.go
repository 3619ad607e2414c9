package media

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"phonodeck/internal/logging"
)

// Resolver maps curriculum items and words to local media files.
// Missing files are remembered and reported; they never fail a build.
type Resolver struct {
	audioDir      string
	imageDir      string
	audioManifest *Manifest
	imageManifest *Manifest
	logger        *slog.Logger
	missing       []string
}

// NewResolver creates a resolver over the given media directories. Either
// manifest may be nil, in which case only filename patterns are tried.
func NewResolver(audioDir, imageDir string, audioManifest, imageManifest *Manifest, logger *slog.Logger) *Resolver {
	return &Resolver{
		audioDir:      audioDir,
		imageDir:      imageDir,
		audioManifest: audioManifest,
		imageManifest: imageManifest,
		logger:        logging.NewComponentLogger(logger, "media"),
	}
}

// ResolveAudio finds the audio file for a word, returning its path and true
// when found.
func (r *Resolver) ResolveAudio(itemID, word string) (string, bool) {
	if r.audioManifest != nil {
		if entry, found := r.audioManifest.Lookup(itemID + ":" + word); found {
			path := filepath.Join(r.audioDir, entry.Filename)
			if fileExists(path) {
				return path, true
			}
		}
	}

	lower := strings.ToLower(word)
	patterns := []string{
		fmt.Sprintf("audio_%s_%s_*.mp3", itemID, safeWord(word)),
		lower + ".mp3",
		itemID + "_" + lower + ".mp3",
	}
	if path, found := r.firstMatch(r.audioDir, patterns); found {
		return path, true
	}

	r.missing = append(r.missing, "audio:"+itemID+":"+word)
	return "", false
}

// ResolveImage finds the image file for a word, returning its path and true
// when found.
func (r *Resolver) ResolveImage(word string) (string, bool) {
	if r.imageManifest != nil {
		if entry, found := r.imageManifest.Lookup(word); found {
			path := filepath.Join(r.imageDir, entry.Filename)
			if fileExists(path) {
				return path, true
			}
		}
	}

	lower := strings.ToLower(word)
	patterns := []string{
		fmt.Sprintf("img_%s_*.png", safeWord(word)),
		lower + ".png",
		lower + ".jpg",
	}
	if path, found := r.firstMatch(r.imageDir, patterns); found {
		return path, true
	}

	r.missing = append(r.missing, "image:"+word)
	return "", false
}

// Missing returns the references that could not be resolved, in request
// order.
func (r *Resolver) Missing() []string {
	out := make([]string, len(r.missing))
	copy(out, r.missing)
	return out
}

// ReportMissing logs a summary of unresolved media, if any.
func (r *Resolver) ReportMissing() {
	if len(r.missing) == 0 {
		return
	}
	r.logger.Warn("media files not found",
		logging.String(logging.FieldEventType, "media_missing"),
		logging.Int("missing_count", len(r.missing)),
		logging.String("first", r.missing[0]),
		logging.String(logging.FieldErrorHint, "cards render without audio/images until the files are generated"))
}

func (r *Resolver) firstMatch(dir string, patterns []string) (string, bool) {
	if strings.TrimSpace(dir) == "" {
		return "", false
	}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err == nil && len(matches) > 0 {
			return matches[0], true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
