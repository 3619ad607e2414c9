package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonodeck/internal/curriculum"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [curriculum.json]",
		Short: "Validate a curriculum file without generating anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.Paths.Curriculum
			if len(args) > 0 {
				path = args[0]
			}

			c, err := curriculum.Load(path)
			if err != nil {
				return fmt.Errorf("curriculum invalid: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Curriculum valid: %s\n", path)
			fmt.Fprintf(out, "  letters: %d\n", len(c.Alphabet.Letters))
			fmt.Fprintf(out, "  confusables: %d\n", len(c.Alphabet.Confusables))
			fmt.Fprintf(out, "  items: %d\n", len(c.Items))
			return nil
		},
	}
}
