package bumpversion

import (
	"fmt"
	"strings"
	"time"
)

// ChangelogAnchor is the text after which new changelog sections are inserted.
const ChangelogAnchor = "These features will be included in the next release:\n\n"

// ChangelogPreviewLimit is how many characters of the changelog a dry run shows.
const ChangelogPreviewLimit = 200

// PatchChangelog turns the unreleased section of a reStructuredText
// changelog into a release section for version, dated today, and opens
// new empty "Added" and "Fixed" sections above it.
func PatchChangelog(content string, version Version, today time.Time) (string, error) {
	idx := strings.Index(content, ChangelogAnchor)
	if idx < 0 {
		return "", fmt.Errorf("%w: can't find %q in the changelog", ErrNoMatch, ChangelogAnchor)
	}
	insertAt := idx + len(ChangelogAnchor)

	title := fmt.Sprintf("%s_ - %s", version, today.Format(time.DateOnly))
	var sb strings.Builder
	sb.WriteString(content[:insertAt])
	sb.WriteString(underline("Added", '-'))
	sb.WriteString("\n")
	sb.WriteString(underline("Fixed", '-'))
	sb.WriteString("\n\n")
	sb.WriteString(underline(title, '='))
	sb.WriteString("\n")
	sb.WriteString(content[insertAt:])
	return sb.String(), nil
}

func underline(heading string, c byte) string {
	return heading + "\n" + strings.Repeat(string(c), len(heading)) + "\n"
}
