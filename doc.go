// Package main implements the bumpversion CLI tool.
//
// The bumpversion tool is run by a maintainer right before cutting a release.
// It reads the current version from the project's version file, computes the
// version being released, looks up the GitHub milestones of the repository,
// and then rewrites every configured file through pattern templates: the
// version is replaced in the version file, CI action manifest, README and
// issue template, milestone badges and links are pointed at the next
// milestone, and the changelog gets a dated heading for the release and new
// empty "Added" and "Fixed" sections.
//
// Command Usage:
//
//	bumpversion [flags]
//
// Flags:
//
//	-n, --dry-run:     Print every updated file instead of writing it. The
//	                   changelog is truncated to its first 200 characters.
//	-M, --major:       Increment the major version (1.2.3 → 2.0.0).
//	-m, --minor:       Increment the minor version (1.2.3 → 1.3.0).
//	-c, --config:      Configuration file in YAML or JSON with comments.
//	                   Defaults to .bumpversion.yaml, .bumpversion.yml,
//	                   .bumpversion.jsonc or .bumpversion.json when present,
//	                   else the built-in table.
//	-C, --dir:         Project root the configured paths are relative to.
//	    --check-clean: Refuse to run if any file to be rewritten has
//	                   uncommitted changes in git.
//	-v, --verbose:     Log each step to stderr.
//	    --version:     Displays the version of the CLI tool and exits.
//
// Without --major or --minor the micro version is incremented (1.2.3 → 1.2.4),
// except for pre-releases and dev releases (1.3.0rc1, 1.3.0.dev0), which are
// released under their current number. When both flags are given, --major wins.
//
// Configuration:
//
//	version_file: src/darker/version.py
//	changelog: CHANGES.rst
//	milestones:
//	  api_url: https://api.github.com
//	  owner: akaihola
//	  repo: darker
//	files:
//	  - path: src/darker/version.py
//	    patterns:
//	      - '^__version__ *= *"{old_version->new_version}"'
//	  - path: README.rst
//	    patterns:
//	      - 'label=release%20{new_version->next_version}'
//
// Each pattern is a regular expression with one {source->destination}
// placeholder. The source names the value searched for (old_version,
// new_version or new_milestone) and the destination names what replaces it
// (new_version, next_version or next_milestone). Every pattern must match its
// file exactly once.
//
// All edits are computed before anything is written, so a missing pattern,
// milestone or changelog anchor leaves the working tree untouched.
package main
