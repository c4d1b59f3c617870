// Package bumpversion provides a library for bumping a project's version
// number across several text files before a release.
//
// It provides functionalities for:
//   - Parsing versions with pre-release and dev markers (1.2.3rc1, 1.2.3.dev0)
//     and computing the next version for a major, minor or patch bump.
//   - Fetching the milestones of a GitHub repository and correlating their
//     titles with version numbers.
//   - Rewriting files through pattern templates of the form
//     `^__version__ = "{old_version->new_version}"`, where the placeholder
//     names the search pattern to capture and the replacement to put in its
//     place.
//   - Inserting a new release heading into a reStructuredText changelog.
//
// A dry run prints every rewritten file instead of writing it; see [DryRun].
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//
//	    bumpversion "github.com/bcomnes/bumpversion/pkg"
//	)
//
//	func main() {
//	    cfg, err := bumpversion.LoadConfig(".bumpversion.yaml")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    meta, err := bumpversion.Run(context.Background(), bumpversion.Options{
//	        Dir:            ".",
//	        Config:         *cfg,
//	        IncrementMinor: true,
//	    })
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("bumped %s -> %s", meta.OldVersion, meta.NewVersion)
//	}
package bumpversion
