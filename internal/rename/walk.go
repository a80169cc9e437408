package rename

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"fansort/internal/logging"
)

// Summary aggregates the outcomes of one run.
type Summary struct {
	Results   []Result
	Renamed   int
	Unchanged int
	Failed    int
}

func (s *Summary) record(result Result, err error) {
	result.Err = err
	s.Results = append(s.Results, result)
	switch {
	case err != nil:
		s.Failed++
	case result.Renamed:
		s.Renamed++
	default:
		s.Unchanged++
	}
}

// Run processes the file or directory tree rooted at input. Files are
// handled strictly sequentially; per-file failures are recorded in the
// summary and the batch continues. Inputs that are neither regular files nor
// directories produce ErrInvalidInput.
func (o *Orchestrator) Run(ctx context.Context, input string) (Summary, error) {
	var summary Summary

	info, err := os.Stat(input)
	if err != nil {
		return summary, Wrap(ErrInvalidInput, "stat input", input, err)
	}

	o.cache.Clear()

	switch {
	case info.Mode().IsRegular():
		result, err := o.Process(ctx, input)
		if err != nil {
			if ctx.Err() != nil {
				return summary, err
			}
			o.logger.Error("rename failed",
				logging.String("old", result.OldPath),
				logging.String("new", result.NewPath),
				logging.Error(err),
			)
		}
		summary.record(result, err)
		return summary, nil
	case info.IsDir():
		walkErr := filepath.WalkDir(input, func(path string, entry fs.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if walkErr != nil {
				o.logger.Warn("skipping unreadable path",
					logging.String("path", path),
					logging.Error(walkErr),
				)
				return nil
			}
			if entry.IsDir() {
				// Entering a directory invalidates only its own entry.
				// WalkDir interleaves subdirectories between a parent's
				// files, so wiping the whole cache here would force a
				// parent's later files to reclassify from their own names.
				o.cache.Delete(path)
				return nil
			}
			if !entry.Type().IsRegular() {
				return nil
			}
			result, err := o.Process(ctx, path)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				o.logger.Error("rename failed",
					logging.String("old", result.OldPath),
					logging.String("new", result.NewPath),
					logging.Error(err),
				)
			}
			summary.record(result, err)
			return nil
		})
		if walkErr != nil {
			return summary, walkErr
		}
		return summary, nil
	default:
		return summary, Wrap(ErrInvalidInput, "inspect input", input+" is neither a file nor a directory", nil)
	}
}
