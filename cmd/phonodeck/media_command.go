package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonodeck/internal/media"
)

func newMediaCommand(ctx *commandContext) *cobra.Command {
	mediaCmd := &cobra.Command{
		Use:   "media",
		Short: "Media manifest utilities",
	}

	mediaCmd.AddCommand(newMediaListCommand(ctx))
	mediaCmd.AddCommand(newMediaClearCommand(ctx))

	return mediaCmd
}

func newMediaListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded media assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			manifest := media.NewManifest(cfg.ManifestPath(), logger)
			keys := manifest.Keys()
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Media manifest is empty")
				return nil
			}

			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				entry, _ := manifest.Lookup(key)
				rows = append(rows, []string{key, entry.Filename})
			}
			printRows(cmd.OutOrStdout(), []string{"Key", "Filename"}, rows, []columnAlignment{alignLeft, alignLeft})
			return nil
		},
	}
}

func newMediaClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the media manifest (assets regenerate on next run)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			manifest := media.NewManifest(cfg.ManifestPath(), logger)
			cleared := manifest.Count()
			if err := manifest.Clear(); err != nil {
				return fmt.Errorf("clear media manifest: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d manifest entries\n", cleared)
			return nil
		},
	}
}
