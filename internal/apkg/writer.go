package apkg

import (
	"archive/zip"
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"phonodeck/internal/deck"
	"phonodeck/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// Write renders the plan into an .apkg at outputPath. The package is built
// in a temporary directory and moved into place, so a failed build never
// leaves a partial file behind.
func Write(ctx context.Context, plan *deck.Plan, outputPath string, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "apkg")

	tmpDir, err := os.MkdirTemp("", "phonodeck-apkg-")
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "collection.anki2")
	if err := writeCollection(ctx, dbPath, plan); err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	tmpPath := outputPath + ".tmp"
	if err := writeArchive(tmpPath, dbPath, plan.MediaFiles); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("move package into place: %w", err)
	}

	logger.Info("wrote package",
		logging.String(logging.FieldEventType, "package_written"),
		logging.String("path", outputPath),
		logging.Int("note_count", plan.NoteCount()),
		logging.Int("media_count", len(plan.MediaFiles)))
	return nil
}

// writeCollection creates the collection.anki2 database with the col row,
// notes, and cards for the plan.
func writeCollection(ctx context.Context, dbPath string, plan *deck.Plan) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open collection db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=DELETE"); err != nil {
		return fmt.Errorf("apply pragma: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin collection tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create collection schema: %w", err)
	}
	if err := insertCol(ctx, tx, plan); err != nil {
		return err
	}
	if err := insertNotes(ctx, tx, plan); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit collection: %w", err)
	}
	return nil
}

func insertCol(ctx context.Context, tx *sql.Tx, plan *deck.Plan) error {
	conf, err := confJSON(plan.Models)
	if err != nil {
		return err
	}
	models, err := modelsJSON(plan.Models)
	if err != nil {
		return err
	}
	decks, err := decksJSON(plan.Decks)
	if err != nil {
		return err
	}
	dconf, err := dconfJSON()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		 VALUES (1, ?, ?, ?, ?, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		buildEpoch, buildEpoch*1000, buildEpoch*1000, collectionVersion,
		conf, models, decks, dconf)
	if err != nil {
		return fmt.Errorf("insert col row: %w", err)
	}
	return nil
}

func insertNotes(ctx context.Context, tx *sql.Tx, plan *deck.Plan) error {
	noteStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
		 VALUES (?, ?, ?, ?, -1, '', ?, ?, ?, 0, '')`)
	if err != nil {
		return fmt.Errorf("prepare note insert: %w", err)
	}
	defer noteStmt.Close()

	cardStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
		 VALUES (?, ?, ?, ?, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')`)
	if err != nil {
		return fmt.Errorf("prepare card insert: %w", err)
	}
	defer cardStmt.Close()

	modelsByID := make(map[int64]deck.Model, len(plan.Models))
	for _, m := range plan.Models {
		modelsByID[m.ID] = m
	}

	for _, d := range plan.Decks {
		for position, note := range d.Notes {
			model, known := modelsByID[note.ModelID]
			if !known {
				return fmt.Errorf("note %s references unknown model %d", note.GUID, note.ModelID)
			}

			firstField := ""
			if len(note.Fields) > 0 {
				firstField = note.Fields[0]
			}
			_, err := noteStmt.ExecContext(ctx,
				noteID(note.GUID), note.GUID, note.ModelID, buildEpoch,
				strings.Join(note.Fields, fieldSeparator), firstField,
				fieldChecksum(firstField))
			if err != nil {
				return fmt.Errorf("insert note %s: %w", note.GUID, err)
			}

			for _, ord := range cardOrds(model, note.Fields) {
				_, err := cardStmt.ExecContext(ctx,
					cardID(note.GUID, ord), noteID(note.GUID), d.ID, ord,
					buildEpoch, position+1)
				if err != nil {
					return fmt.Errorf("insert card %d for note %s: %w", ord, note.GUID, err)
				}
			}
		}
	}
	return nil
}

// writeArchive zips the collection database and media files into an .apkg.
// Media files are stored under numeric names with a "media" JSON manifest
// mapping them back to their filenames, per the package format.
func writeArchive(archivePath, dbPath string, mediaFiles []string) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("create package file: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	stamp := time.Unix(buildEpoch, 0).UTC()

	addFile := func(name, sourcePath string) error {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: stamp,
		})
		if err != nil {
			return fmt.Errorf("add %s to package: %w", name, err)
		}
		src, err := os.Open(sourcePath)
		if err != nil {
			return fmt.Errorf("open %s: %w", sourcePath, err)
		}
		defer src.Close()
		if _, err := io.Copy(w, src); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}

	if err := addFile("collection.anki2", dbPath); err != nil {
		return err
	}

	manifest := make(map[string]string, len(mediaFiles))
	for i, path := range mediaFiles {
		name := fmt.Sprintf("%d", i)
		if err := addFile(name, path); err != nil {
			return err
		}
		manifest[name] = filepath.Base(path)
	}

	manifestData, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal media manifest: %w", err)
	}
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "media", Method: zip.Deflate, Modified: stamp})
	if err != nil {
		return fmt.Errorf("add media manifest: %w", err)
	}
	if _, err := w.Write(manifestData); err != nil {
		return fmt.Errorf("write media manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize package: %w", err)
	}
	return nil
}
