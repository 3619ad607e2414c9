package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"phonodeck/internal/apkg"
	"phonodeck/internal/curriculum"
	"phonodeck/internal/deck"
	"phonodeck/internal/logging"
	"phonodeck/internal/media"
)

const defaultPackageName = "phonics_deck.apkg"

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var noMedia bool

	cmd := &cobra.Command{
		Use:   "build [curriculum.json] [output.apkg]",
		Short: "Generate the Anki package from a curriculum file",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			curriculumPath := cfg.Paths.Curriculum
			if len(args) > 0 {
				curriculumPath = args[0]
			}
			outputPath := filepath.Join(cfg.Paths.OutputDir, defaultPackageName)
			if len(args) > 1 {
				outputPath = args[1]
			}

			// One build at a time: concurrent runs would race on the
			// output file and the media manifest.
			buildLock := flock.New(cfg.LockPath())
			locked, err := buildLock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire build lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another build is already running (lock: %s)", cfg.LockPath())
			}
			defer func() { _ = buildLock.Unlock() }()

			logger.Info("loading curriculum",
				logging.String(logging.FieldEventType, "curriculum_load"),
				logging.String("path", curriculumPath))
			c, err := curriculum.Load(curriculumPath)
			if err != nil {
				return fmt.Errorf("load curriculum: %w", err)
			}

			var resolver *media.Resolver
			if cfg.Deck.IncludeMedia && !noMedia {
				manifest := media.NewManifest(cfg.ManifestPath(), logger)
				resolver = media.NewResolver(cfg.Paths.AudioDir, cfg.Paths.ImageDir, manifest, nil, logger)
			}

			plan := deck.Build(c, deck.Options{
				WindowSize: cfg.Deck.WindowSize,
				Media:      resolver,
			})

			if err := apkg.Write(cmd.Context(), plan, outputPath, logger); err != nil {
				return fmt.Errorf("write package: %w", err)
			}
			if resolver != nil {
				resolver.ReportMissing()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Deck generated: %s\n", outputPath)
			printBuildSummary(cmd, plan)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noMedia, "no-media", false, "Skip media resolution even when configured")
	return cmd
}

func printBuildSummary(cmd *cobra.Command, plan *deck.Plan) {
	rows := make([][]string, 0, len(plan.Decks)+1)
	for _, d := range plan.Decks {
		rows = append(rows, []string{d.Name, strconv.Itoa(len(d.Notes))})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(plan.NoteCount())})
	printRows(cmd.OutOrStdout(), []string{"Subdeck", "Notes"}, rows, []columnAlignment{alignLeft, alignRight})
}
