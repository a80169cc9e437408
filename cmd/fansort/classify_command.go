package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"fansort/internal/logging"
	"fansort/internal/rename"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [path]",
		Short: "Show how files would be classified without renaming them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			input, err := resolveInputPath(cmd, args)
			if err != nil {
				return err
			}

			orch := rename.NewOrchestrator(rename.Options{
				Classifier: ctx.newClassifier(cfg),
				Logger:     logging.NewNop(),
				DryRun:     true,
				TitleCase:  cfg.Rename.TitleCase,
			})
			summary, err := orch.Run(cmd.Context(), input)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(summary.Results))
			for _, result := range summary.Results {
				cls := result.Classification
				rows = append(rows, []string{
					filepath.Base(result.OldPath),
					cls.Title,
					cls.Season,
					cls.Episode,
					cls.Group,
					filepath.Base(result.NewPath),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"File", "Title", "Season", "Episode", "Group", "New Name"},
				rows,
				2, 3,
			))
			return nil
		},
	}
}
