package bumpversion

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/bcomnes/bumpversion/internal/logging"
)

// currentVersionGroup captures the version when reading the version file.
const currentVersionGroup = `[\d\.a-z]+`

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion    string   // The version before bumping.
	NewVersion    string   // The version being released.
	NextVersion   string   // The next milestone after the new version.
	NewMilestone  string   // Milestone number of the new version.
	NextMilestone string   // Milestone number of the next version.
	BumpType      string   // "major", "minor" or "patch".
	UpdatedFiles  []string // Paths written (or printed in a dry run), changelog last.
}

// Options configure a version bump.
type Options struct {
	// Dir is the project root all configured paths are relative to.
	Dir    string
	Config Config

	IncrementMajor bool
	IncrementMinor bool

	// Milestones defaults to a Client built from Config.Milestones.
	Milestones MilestoneSource
	// Today dates the changelog heading; zero means time.Now().
	Today time.Time
	// CheckClean refuses to run when target files have uncommitted changes.
	CheckClean bool

	Log *logging.Logger
}

func (o *Options) logger() *logging.Logger {
	if o.Log == nil {
		return logging.Default()
	}
	return o.Log
}

func (o *Options) milestones() MilestoneSource {
	if o.Milestones != nil {
		return o.Milestones
	}
	m := o.Config.Milestones
	return NewClient(m.APIURL, m.Owner, m.Repo)
}

// ReadCurrentVersion reads the version from the version file using the
// first template of its rule, with the placeholder matching any version.
func ReadCurrentVersion(dir string, cfg Config) (Version, error) {
	rule, ok := cfg.Files.Rule(cfg.VersionFile)
	if !ok || len(rule.Patterns) == 0 {
		return Version{}, fmt.Errorf("%w: no pattern for version file %s", ErrNoMatch, cfg.VersionFile)
	}
	t, err := ParseTemplate(rule.Patterns[0])
	if err != nil {
		return Version{}, err
	}
	re, err := t.Regexp(currentVersionGroup)
	if err != nil {
		return Version{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, cfg.VersionFile))
	if err != nil {
		return Version{}, fmt.Errorf("failed to read version file: %w", err)
	}
	m := re.FindSubmatchIndex(data)
	idx := re.SubexpIndex(placeholderGroup)
	if m == nil || m[2*idx] < 0 {
		return Version{}, fmt.Errorf("%w: can't find %s in %s", ErrNoMatch, re, cfg.VersionFile)
	}
	return ParseVersion(string(data[m[2*idx]:m[2*idx+1]]))
}

// Replacements holds the lookup tables for one run.
type Replacements struct {
	Patterns     PatternDict
	Replacements ReplacementDict
	Meta         VersionMeta
	NewVersion   Version
}

// GetReplacements computes the new and next versions from the current one
// and the milestones, and builds the search patterns and replacement
// strings used by the templates.
func GetReplacements(ctx context.Context, opts Options) (*Replacements, error) {
	log := opts.logger()

	oldVersion, err := ReadCurrentVersion(opts.Dir, opts.Config)
	if err != nil {
		return nil, err
	}
	newVersion := NextVersion(oldVersion, opts.IncrementMajor, opts.IncrementMinor)
	log.Info("computed new version", "old", oldVersion, "new", newVersion)

	milestones, err := opts.milestones().FetchMilestones(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("fetched milestones", "count", len(milestones))

	newMilestone, ok := milestones[newVersion]
	if !ok {
		return nil, fmt.Errorf("%w: no milestone exists for version %s", ErrNotFound, newVersion)
	}
	nextVersion, err := NextMilestoneVersion(newVersion, milestones)
	if err != nil {
		return nil, err
	}
	nextMilestone := milestones[nextVersion]
	log.Info("found milestones", "new", newMilestone, "next_version", nextVersion, "next", nextMilestone)

	return &Replacements{
		Patterns: PatternDict{
			KeyOldVersion:   regexp.QuoteMeta(oldVersion.String()),
			KeyNewVersion:   regexp.QuoteMeta(newVersion.String()),
			KeyNewMilestone: regexp.QuoteMeta(newMilestone),
		},
		Replacements: ReplacementDict{
			KeyNewVersion:    newVersion.String(),
			KeyNextVersion:   nextVersion.String(),
			KeyNextMilestone: nextMilestone,
		},
		Meta: VersionMeta{
			OldVersion:    oldVersion.String(),
			NewVersion:    newVersion.String(),
			NextVersion:   nextVersion.String(),
			NewMilestone:  newMilestone,
			NextMilestone: nextMilestone,
			BumpType:      BumpType(opts.IncrementMajor, opts.IncrementMinor),
		},
		NewVersion: newVersion,
	}, nil
}

// plan computes every edit, the changelog included, without writing.
func plan(ctx context.Context, opts Options) (*Replacements, []Edit, Edit, error) {
	if opts.CheckClean {
		files := append(opts.Config.Files.Paths(), opts.Config.Changelog)
		if err := CheckClean(opts.Dir, files); err != nil {
			return nil, nil, Edit{}, err
		}
	}

	r, err := GetReplacements(ctx, opts)
	if err != nil {
		return nil, nil, Edit{}, err
	}

	rw := &Rewriter{Dir: opts.Dir, Table: opts.Config.Files, Log: opts.Log}
	edits, err := rw.Plan(r.Patterns, r.Replacements)
	if err != nil {
		return nil, nil, Edit{}, err
	}

	data, err := os.ReadFile(filepath.Join(opts.Dir, opts.Config.Changelog))
	if err != nil {
		return nil, nil, Edit{}, fmt.Errorf("reading changelog: %w", err)
	}
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	changelog, err := PatchChangelog(string(data), r.NewVersion, today)
	if err != nil {
		return nil, nil, Edit{}, fmt.Errorf("%s: %w", opts.Config.Changelog, err)
	}
	return r, edits, Edit{Path: opts.Config.Changelog, Content: []byte(changelog)}, nil
}

// Execute bumps the version, writing file edits to files and the changelog
// edit to changelog. All edits are computed before the first write, so any
// lookup or matching failure leaves every file untouched.
func Execute(ctx context.Context, opts Options, files, changelog Sink) (VersionMeta, error) {
	r, edits, changelogEdit, err := plan(ctx, opts)
	if err != nil {
		return VersionMeta{}, err
	}
	meta := r.Meta

	written, err := Flush(files, edits)
	meta.UpdatedFiles = written
	if err != nil {
		return meta, err
	}
	if err := changelog.Write(changelogEdit.Path, changelogEdit.Content); err != nil {
		return meta, err
	}
	meta.UpdatedFiles = append(meta.UpdatedFiles, changelogEdit.Path)
	opts.logger().Info("version bumped", "files", len(meta.UpdatedFiles))
	return meta, nil
}

// Run bumps the version and rewrites all configured files and the changelog.
func Run(ctx context.Context, opts Options) (VersionMeta, error) {
	sink := FileSink{Dir: opts.Dir}
	return Execute(ctx, opts, sink, sink)
}

// DryRun performs the same steps as Run but prints the resulting files to
// w instead of writing them. Only the start of the changelog is shown.
func DryRun(ctx context.Context, opts Options, w io.Writer) (VersionMeta, error) {
	return Execute(ctx, opts, PrintSink{W: w}, PrintSink{W: w, Limit: ChangelogPreviewLimit, Banner: ChangelogBanner})
}
