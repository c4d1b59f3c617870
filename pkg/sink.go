package bumpversion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives the final content of a rewritten file.
type Sink interface {
	Write(path string, content []byte) error
}

// FileSink overwrites files on disk. Relative paths are resolved against Dir.
// Existing permission bits are kept.
type FileSink struct {
	Dir string
}

func (s FileSink) Write(path string, content []byte) error {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(s.Dir, path)
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(full); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(full, content, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Banner formats for PrintSink. The changelog preview has a compact banner.
const (
	FileBanner      = "\n######## %s ########\n\n"
	ChangelogBanner = "######## %s ########\n"
)

// PrintSink prints each file under a banner instead of writing it.
// When Limit is positive only the first Limit characters are shown.
// An empty Banner selects FileBanner.
type PrintSink struct {
	W      io.Writer
	Limit  int
	Banner string
}

func (s PrintSink) Write(path string, content []byte) error {
	text := string(content)
	if s.Limit > 0 {
		if runes := []rune(text); len(runes) > s.Limit {
			text = string(runes[:s.Limit])
		}
	}
	banner := s.Banner
	if banner == "" {
		banner = FileBanner
	}
	if _, err := fmt.Fprintf(s.W, banner+"%s\n", path, text); err != nil {
		return fmt.Errorf("failed to print %s: %w", path, err)
	}
	return nil
}
