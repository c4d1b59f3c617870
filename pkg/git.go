package bumpversion

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
)

// checkGit verifies that git is available on the system.
func checkGit() error {
	cmd := exec.Command("git", "--version")
	if err := cmd.Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

// CheckClean fails with ErrDirtyFiles if any of files (relative to dir)
// has uncommitted changes. A failed bump is undone by restoring the files
// from version control, which only works if they were clean beforehand.
func CheckClean(dir string, files []string) error {
	if err := checkGit(); err != nil {
		return err
	}

	args := append([]string{"status", "--porcelain", "--"}, files...)
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("failed to check git status: %v, detail: %s", err, stderr.String())
	}

	var dirty []string
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) < 4 {
			continue
		}
		dirty = append(dirty, filepath.ToSlash(string(bytes.TrimSpace(line[3:]))))
	}
	if len(dirty) > 0 {
		return fmt.Errorf("%w in files to be rewritten: %v", ErrDirtyFiles, dirty)
	}
	return nil
}
