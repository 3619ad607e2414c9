package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"phonodeck/internal/logging"
)

// Entry records one generated media asset: the parameters it was generated
// from, the output filename, and an optional content hash.
type Entry struct {
	Filename    string            `json:"filename"`
	Params      map[string]string `json:"params"`
	ContentHash string            `json:"content_hash,omitempty"`
}

// Manifest provides thread-safe access to the media manifest file.
type Manifest struct {
	path    string
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewManifest creates a manifest instance. If path is empty the manifest is
// non-functional (all operations become no-ops). The file is created lazily
// on first Store call.
func NewManifest(path string, logger *slog.Logger) *Manifest {
	logger = logging.NewComponentLogger(logger, "media")

	m := &Manifest{
		path:    path,
		logger:  logger,
		entries: make(map[string]Entry),
	}

	if path == "" {
		return m
	}

	if err := m.load(); err != nil {
		logger.Warn("failed to load media manifest",
			logging.String(logging.FieldEventType, "manifest_load_failed"),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "manifest will start empty; unchanged media may regenerate"))
	}

	return m
}

// Lookup returns the manifest entry for the given key if found.
func (m *Manifest) Lookup(key string) (Entry, bool) {
	key = strings.TrimSpace(key)
	if key == "" || m.path == "" {
		return Entry{}, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, found := m.entries[key]
	return entry, found
}

// Store adds or updates an entry and persists to disk.
func (m *Manifest) Store(key string, entry Entry) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("media key cannot be empty")
	}
	if m.path == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry

	if err := m.save(); err != nil {
		return fmt.Errorf("persist manifest: %w", err)
	}

	m.logger.Debug("recorded media asset",
		logging.String("key", key),
		logging.String("filename", entry.Filename))
	return nil
}

// NeedsRegeneration reports whether the asset behind key must be generated
// again: no entry exists, the parameters changed, or the output file is
// gone from mediaDir.
func (m *Manifest) NeedsRegeneration(key string, params map[string]string, mediaDir string) bool {
	entry, found := m.Lookup(key)
	if !found {
		return true
	}
	if !reflect.DeepEqual(entry.Params, params) {
		return true
	}
	if entry.Filename == "" {
		return true
	}
	if _, err := os.Stat(filepath.Join(mediaDir, entry.Filename)); err != nil {
		return true
	}
	return false
}

// Keys returns all manifest keys sorted lexically.
func (m *Manifest) Keys() []string {
	if m.path == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of manifest entries.
func (m *Manifest) Count() int {
	if m.path == "" {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Clear removes all entries and persists the empty manifest.
func (m *Manifest) Clear() error {
	if m.path == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]Entry)

	if err := m.save(); err != nil {
		return fmt.Errorf("persist manifest: %w", err)
	}

	m.logger.Debug("cleared media manifest")
	return nil
}

func (m *Manifest) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // fresh start
		}
		return fmt.Errorf("read manifest file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse manifest file: %w", err)
	}
	m.entries = entries

	m.logger.Debug("loaded media manifest",
		logging.Int("entry_count", len(m.entries)),
		logging.String("path", m.path))
	return nil
}

// save writes the manifest to disk atomically. Keys marshal in sorted order
// so the file is diff-friendly.
func (m *Manifest) save() error {
	data, err := json.MarshalIndent(m.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	tmpPath := m.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
