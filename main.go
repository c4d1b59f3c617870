// Package main implements a CLI tool to bump the version number across a
// project's files and synchronize it with its GitHub milestones.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bcomnes/bumpversion/internal/logging"
	bumpversion "github.com/bcomnes/bumpversion/pkg"
)

type options struct {
	dryRun         bool
	incrementMajor bool
	incrementMinor bool
	configPath     string
	dir            string
	checkClean     bool
	verbose        bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bumpversion [options]",
		Short: "Bump the version number and milestone links before a release",
		Long: `Bumps the version number in the version file, CI action manifest, README and
issue template, points milestone badges at the next milestone, and opens a new
unreleased section in the changelog.

Without flags the micro version is incremented, unless the current version is a
pre-release or dev release, which is released as is. --major wins over --minor
when both are given.

Examples:
  bumpversion --dry-run
  bumpversion --minor
  bumpversion -M -c .bumpversion.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	cmd.SetVersionTemplate("bumpversion CLI version {{.Version}}\n")

	flags := cmd.Flags()
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the updated files instead of writing them")
	flags.BoolVarP(&opts.incrementMajor, "major", "M", false, "Increment the major version number")
	flags.BoolVarP(&opts.incrementMinor, "minor", "m", false, "Increment the minor version number")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default: .bumpversion.{yaml,yml,jsonc,json} if present)")
	flags.StringVarP(&opts.dir, "dir", "C", ".", "Project root the configured paths are relative to")
	flags.BoolVar(&opts.checkClean, "check-clean", false, "Refuse to run if files to be rewritten have uncommitted changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log each step to stderr")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *options) error {
	logging.SetOutput(log.New(stderr, "", 0))
	logging.SetLevel(logging.LevelWarn)
	if opts.verbose {
		logging.SetLevel(logging.LevelDebug)
	}
	logger := logging.Default()

	configPath := opts.configPath
	if configPath == "" {
		configPath = bumpversion.FindConfig(opts.dir)
	}
	cfg, err := bumpversion.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if configPath != "" {
		logger.Info("loaded configuration", "path", filepath.ToSlash(configPath))
	}

	bumpOpts := bumpversion.Options{
		Dir:            opts.dir,
		Config:         *cfg,
		IncrementMajor: opts.incrementMajor,
		IncrementMinor: opts.incrementMinor,
		CheckClean:     opts.checkClean,
		Log:            logger,
	}

	var meta bumpversion.VersionMeta
	if opts.dryRun {
		meta, err = bumpversion.DryRun(ctx, bumpOpts, stdout)
	} else {
		meta, err = bumpversion.Run(ctx, bumpOpts)
	}
	if err != nil {
		return err
	}

	// Summary
	if opts.dryRun {
		fmt.Fprintln(stdout, "\nDry run complete — no files were modified.")
	} else {
		fmt.Fprintln(stdout, "Version bump successful!")
	}
	fmt.Fprintf(stdout, "Old Version:  %s\n", meta.OldVersion)
	fmt.Fprintf(stdout, "New Version:  %s (milestone %s)\n", meta.NewVersion, meta.NewMilestone)
	fmt.Fprintf(stdout, "Next Version: %s (milestone %s)\n", meta.NextVersion, meta.NextMilestone)
	fmt.Fprintf(stdout, "Bump Type:    %s\n", meta.BumpType)

	if len(meta.UpdatedFiles) > 0 {
		if opts.dryRun {
			fmt.Fprintln(stdout, "Files that would be updated:")
		} else {
			fmt.Fprintln(stdout, "Files updated:")
		}
		for _, f := range meta.UpdatedFiles {
			fmt.Fprintf(stdout, "  %s\n", f)
		}
	}
	return nil
}

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
