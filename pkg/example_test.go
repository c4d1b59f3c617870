package bumpversion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// ExampleNextVersion shows which version gets released for each flag.
func ExampleNextVersion() {
	current := MustParseVersion("1.2.3")
	fmt.Println(NextVersion(current, false, false))
	fmt.Println(NextVersion(current, false, true))
	fmt.Println(NextVersion(current, true, false))
	fmt.Println(NextVersion(MustParseVersion("1.3.0rc1"), false, false))
	// Output:
	// 1.2.4
	// 1.3.0
	// 2.0.0
	// 1.3.0rc1
}

// ExampleApplyTemplate replaces the version in a Python module.
func ExampleApplyTemplate() {
	content := "__version__ = \"1.2.3\"\n"
	updated, err := ApplyTemplate(content,
		`^__version__ = "{old_version->new_version}"`,
		PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")},
		ReplacementDict{KeyNewVersion: "1.3.0"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(updated)
	// Output:
	// __version__ = "1.3.0"
}

// ExamplePatchChangelog opens a release section in a changelog.
func ExamplePatchChangelog() {
	content := "These features will be included in the next release:\n\n- Fix a bug\n"
	updated, err := PatchChangelog(content, MustParseVersion("1.3.0"), time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(updated)
	// Output:
	// These features will be included in the next release:
	//
	// Added
	// -----
	//
	// Fixed
	// -----
	//
	//
	// 1.3.0_ - 2026-10-18
	// ===================
	//
	// - Fix a bug
}

type exampleMilestones MilestoneMap

func (m exampleMilestones) FetchMilestones(context.Context) (MilestoneMap, error) {
	return MilestoneMap(m), nil
}

// ExampleRun bumps the version of a small project whose milestones are
// known up front.
func ExampleRun() {
	tmpDir, err := os.MkdirTemp("", "bumpversion_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	files := map[string]string{
		"version.py":  "__version__ = \"0.9.0\"\n",
		"README.rst":  "Milestone: https://github.com/example/tool/milestone/7\n",
		"CHANGES.rst": "These features will be included in the next release:\n\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil {
			fmt.Println("failed to write file:", err)
			return
		}
	}

	meta, err := Run(context.Background(), Options{
		Dir: tmpDir,
		Config: Config{
			VersionFile: "version.py",
			Changelog:   "CHANGES.rst",
			Files: PatternTable{
				{Path: "version.py", Patterns: []string{`^__version__ = "{old_version->new_version}"`}},
				{Path: "README.rst", Patterns: []string{`milestone/{new_milestone->next_milestone}$`}},
			},
		},
		IncrementMinor: true,
		Milestones: exampleMilestones{
			MustParseVersion("0.10.0"): "7",
			MustParseVersion("1.0.0"):  "8",
		},
		Today: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		fmt.Println("error bumping version:", err)
		return
	}

	fmt.Println(meta.OldVersion, "->", meta.NewVersion, "next", meta.NextVersion)
	readme, _ := os.ReadFile(filepath.Join(tmpDir, "README.rst"))
	fmt.Print(string(readme))
	// Output:
	// 0.9.0 -> 0.10.0 next 1.0.0
	// Milestone: https://github.com/example/tool/milestone/8
}
