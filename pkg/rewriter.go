package bumpversion

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bcomnes/bumpversion/internal/logging"
)

// FileRule lists the pattern templates applied to one file.
type FileRule struct {
	Path     string   `yaml:"path" json:"path"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// PatternTable is the ordered list of files to rewrite.
type PatternTable []FileRule

// Paths returns the file paths of the table in order.
func (t PatternTable) Paths() []string {
	paths := make([]string, 0, len(t))
	for _, rule := range t {
		paths = append(paths, rule.Path)
	}
	return paths
}

// Rule returns the rule for path, if any.
func (t PatternTable) Rule(path string) (FileRule, bool) {
	for _, rule := range t {
		if filepath.Clean(rule.Path) == filepath.Clean(path) {
			return rule, true
		}
	}
	return FileRule{}, false
}

// Edit is the new content planned for a file.
type Edit struct {
	Path    string
	Content []byte
}

// Rewriter applies a PatternTable to files below Dir.
type Rewriter struct {
	Dir   string
	Table PatternTable
	Log   *logging.Logger
}

// NewRewriter returns a Rewriter for table rooted at dir.
func NewRewriter(dir string, table PatternTable) *Rewriter {
	return &Rewriter{Dir: dir, Table: table}
}

func (r *Rewriter) logger() *logging.Logger {
	if r.Log == nil {
		return logging.Default()
	}
	return r.Log
}

// Plan reads every file of the table once and applies its templates in
// order, each to the result of the previous one. Nothing is written; the
// first failing template aborts the whole plan.
func (r *Rewriter) Plan(patterns PatternDict, replacements ReplacementDict) ([]Edit, error) {
	edits := make([]Edit, 0, len(r.Table))
	for _, rule := range r.Table {
		data, err := os.ReadFile(filepath.Join(r.Dir, rule.Path))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rule.Path, err)
		}
		log := r.logger().With("file", rule.Path)
		content := string(data)
		for _, raw := range rule.Patterns {
			content, err = ApplyTemplate(content, raw, patterns, replacements)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", rule.Path, err)
			}
			log.Debug("applied template", "template", raw)
		}
		log.Info("planned rewrite", "templates", len(rule.Patterns))
		edits = append(edits, Edit{Path: rule.Path, Content: []byte(content)})
	}
	return edits, nil
}

// Flush hands every edit to sink in order and returns the paths written.
// It stops at the first failure; earlier edits are not rolled back.
func Flush(sink Sink, edits []Edit) ([]string, error) {
	written := make([]string, 0, len(edits))
	for _, e := range edits {
		if err := sink.Write(e.Path, e.Content); err != nil {
			return written, err
		}
		written = append(written, e.Path)
	}
	return written, nil
}
