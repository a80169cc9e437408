package rename

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fansort/internal/classify"
	"fansort/internal/fileutil"
	"fansort/internal/logging"
)

// Mover performs the physical rename. Swappable in tests.
type Mover func(oldPath, newPath string) error

// Options configures an Orchestrator.
type Options struct {
	Classifier *classify.Classifier
	Logger     *slog.Logger
	// Mover defaults to fileutil.Rename.
	Mover Mover
	// DryRun previews target names without touching the filesystem.
	DryRun bool
	// TitleCase rewrites identified titles into title case before
	// composing the new name.
	TitleCase bool
}

// Orchestrator classifies files and renames them in place to the canonical
// "{Title} - S{season}E{episode} - {Group}{ext}" form.
type Orchestrator struct {
	classifier *classify.Classifier
	cache      *DirCache
	logger     *slog.Logger
	mover      Mover
	dryRun     bool
	titleCase  bool
	caser      cases.Caser
}

// NewOrchestrator constructs an orchestrator with a fresh directory cache.
func NewOrchestrator(opts Options) *Orchestrator {
	classifier := opts.Classifier
	if classifier == nil {
		classifier = classify.New(nil, nil)
	}
	mover := opts.Mover
	if mover == nil {
		mover = fileutil.Rename
	}
	return &Orchestrator{
		classifier: classifier,
		cache:      NewDirCache(),
		logger:     logging.NewComponentLogger(opts.Logger, "rename"),
		mover:      mover,
		dryRun:     opts.DryRun,
		titleCase:  opts.TitleCase,
		caser:      cases.Title(language.Und),
	}
}

// Result records the outcome for one file.
type Result struct {
	OldPath        string
	NewPath        string
	Classification classify.Classification
	// Renamed is true when the file was physically moved. Dry runs and
	// already-canonical names leave it false with a nil error.
	Renamed bool
	Err     error
}

// Process classifies a single file and renames it. The directory-scoped
// classification is served from the cache when the file's directory already
// has an entry; the episode number is always recomputed.
func (o *Orchestrator) Process(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{OldPath: path}, err
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	analysis := o.classifier.Analyze(stem)
	scoped, hit := o.cache.Get(dir)
	if !hit {
		scoped = o.classifier.Identify(analysis)
		o.cache.Put(dir, scoped)
	}
	cls := classify.Classification{Scoped: scoped, Episode: o.classifier.Episode(analysis)}

	o.logger.Debug("classified file",
		logging.String("file", base),
		logging.String("cleaned", analysis.Cleaned),
		logging.String("title", cls.Title),
		logging.String("season", cls.Season),
		logging.String("episode", cls.Episode),
		logging.String("group", cls.Group),
		logging.Bool("cache_hit", hit),
	)

	title := cls.Title
	if o.titleCase {
		title = o.caser.String(title)
	}
	newName := fmt.Sprintf("%s - S%sE%s - %s%s", title, cls.Season, cls.Episode, cls.Group, ext)
	newPath := filepath.Join(dir, newName)
	result := Result{OldPath: path, NewPath: newPath, Classification: cls}

	if newPath == path {
		o.logger.Debug("file already canonical", logging.String("file", base))
		return result, nil
	}
	if o.dryRun {
		o.logger.Info("dry-run rename",
			logging.String("old", path),
			logging.String("new", newPath),
		)
		return result, nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return result, Wrap(ErrRename, "rename", fmt.Sprintf("target already exists: %s", newPath), nil)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return result, Wrap(ErrRename, "inspect target", newPath, err)
	}
	if err := o.mover(path, newPath); err != nil {
		return result, Wrap(ErrRename, "move file", path, err)
	}
	result.Renamed = true
	o.logger.Info("renamed file",
		logging.String("old", path),
		logging.String("new", newPath),
	)
	return result, nil
}
