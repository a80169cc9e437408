package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fansort/internal/config"
	"fansort/internal/rename"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var titleCase bool

	cmd := &cobra.Command{
		Use:   "rename [path]",
		Short: "Rename media files into '{Title} - SxxEyy - {Group}' form",
		Long: `Classify every regular file under the given path and rename it in place to
"{Title} - S{season}E{episode} - {ReleaseGroup}{ext}". A directory is walked
recursively; a single file is processed on its own. When no path is given,
fansort prompts for one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			input, err := resolveInputPath(cmd, args)
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			if !dryRun {
				release, err := rename.AcquireRunLock(cfg.LockPath())
				if err != nil {
					return err
				}
				defer release()
			}

			useTitleCase := cfg.Rename.TitleCase
			if cmd.Flags().Changed("title-case") {
				useTitleCase = titleCase
			}

			orch := rename.NewOrchestrator(rename.Options{
				Classifier: ctx.newClassifier(cfg),
				Logger:     logger,
				DryRun:     dryRun,
				TitleCase:  useTitleCase,
			})
			summary, err := orch.Run(cmd.Context(), input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reportResults(out, summary.Results, dryRun)
			printSummary(out, summary, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview target names without renaming anything")
	cmd.Flags().BoolVar(&titleCase, "title-case", false, "Title-case identified show names")
	return cmd
}

// resolveInputPath takes the path argument or, when absent, prompts for one
// on stdin. Surrounding quotes are stripped so paths dragged in from a file
// manager work unchanged.
func resolveInputPath(cmd *cobra.Command, args []string) (string, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		fmt.Fprint(cmd.OutOrStdout(), "Enter a file or directory path: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input path: %w", err)
		}
		raw = line
	}

	raw = strings.Trim(strings.TrimSpace(raw), `"'`)
	if raw == "" {
		return "", errors.New("an input path is required")
	}
	return config.ExpandPath(raw)
}

func reportResults(out io.Writer, results []rename.Result, dryRun bool) {
	for _, result := range results {
		switch {
		case result.Err != nil:
			fmt.Fprintf(out, "failed: %s -> %s (%v)\n", result.OldPath, result.NewPath, result.Err)
		case result.Renamed:
			fmt.Fprintf(out, "renamed: %s -> %s\n", result.OldPath, result.NewPath)
		case dryRun && result.NewPath != result.OldPath:
			fmt.Fprintf(out, "would rename: %s -> %s\n", result.OldPath, result.NewPath)
		default:
			fmt.Fprintf(out, "unchanged: %s\n", result.OldPath)
		}
	}
}

func printSummary(out io.Writer, summary rename.Summary, dryRun bool) {
	renamedHeader := "Renamed"
	if dryRun {
		renamedHeader = "Would Rename"
	}
	renamed := summary.Renamed
	unchanged := summary.Unchanged
	if dryRun {
		// Dry runs never move files; count pending renames instead.
		renamed, unchanged = 0, 0
		for _, result := range summary.Results {
			if result.Err != nil {
				continue
			}
			if result.NewPath != result.OldPath {
				renamed++
			} else {
				unchanged++
			}
		}
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Files", renamedHeader, "Unchanged", "Failed"},
		[][]string{{
			strconv.Itoa(len(summary.Results)),
			strconv.Itoa(renamed),
			strconv.Itoa(unchanged),
			strconv.Itoa(summary.Failed),
		}},
		0, 1, 2, 3,
	))
}
