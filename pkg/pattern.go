package bumpversion

import (
	"fmt"
	"regexp"
)

// Keys of the pattern and replacement tables used in templates.
const (
	KeyOldVersion    = "old_version"
	KeyNewVersion    = "new_version"
	KeyNewMilestone  = "new_milestone"
	KeyNextVersion   = "next_version"
	KeyNextMilestone = "next_milestone"
)

// PatternDict maps template source keys to regex-escaped search patterns.
type PatternDict map[string]string

// ReplacementDict maps template destination keys to literal replacements.
type ReplacementDict map[string]string

// placeholderRe matches a "{sourceKey->destKey}" placeholder.
var placeholderRe = regexp.MustCompile(`\{(\w+)->(\w+)\}`)

// Template is a parsed pattern template such as
//
//	^__version__ = "{old_version->new_version}"
//
// Prefix and Suffix are regular expression text surrounding the
// placeholder. SourceKey selects the search pattern and DestKey the
// replacement.
type Template struct {
	Raw       string
	Prefix    string
	SourceKey string
	DestKey   string
	Suffix    string
}

// ParseTemplate splits raw at its placeholder. A template must contain
// exactly one placeholder; anything else fails with ErrNoMatch.
func ParseTemplate(raw string) (Template, error) {
	locs := placeholderRe.FindAllStringSubmatchIndex(raw, -1)
	switch len(locs) {
	case 0:
		return Template{}, fmt.Errorf("%w: can't find %s in %q", ErrNoMatch, placeholderRe, raw)
	case 1:
	default:
		return Template{}, fmt.Errorf("%w: %d placeholders in %q, expected one", ErrNoMatch, len(locs), raw)
	}
	loc := locs[0]
	return Template{
		Raw:       raw,
		Prefix:    raw[:loc[0]],
		SourceKey: raw[loc[2]:loc[3]],
		DestKey:   raw[loc[4]:loc[5]],
		Suffix:    raw[loc[1]:],
	}, nil
}

// placeholderGroup names the capturing group that replaces the placeholder,
// so groups written in the prefix do not shift its index.
const placeholderGroup = "placeholder"

// Regexp compiles the template in multiline mode with group as the
// capturing group in place of the placeholder.
func (t Template) Regexp(group string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?m)" + t.Prefix + "(?P<" + placeholderGroup + ">" + group + ")" + t.Suffix)
	if err != nil {
		return nil, fmt.Errorf("compiling template %q: %w", t.Raw, err)
	}
	return re, nil
}

// ResolvePattern locates the single match of t in content, using the
// pattern named by t.SourceKey, and replaces the captured text with the
// replacement named by t.DestKey. The rest of content is left untouched.
func ResolvePattern(content string, t Template, patterns PatternDict, replacements ReplacementDict) (string, error) {
	current, ok := patterns[t.SourceKey]
	if !ok {
		return "", fmt.Errorf("%w: %q in template %q", ErrUnknownKey, t.SourceKey, t.Raw)
	}
	replacement, ok := replacements[t.DestKey]
	if !ok {
		return "", fmt.Errorf("%w: %q in template %q", ErrUnknownKey, t.DestKey, t.Raw)
	}

	re, err := t.Regexp(current)
	if err != nil {
		return "", err
	}
	matches := re.FindAllStringSubmatchIndex(content, 2)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: can't find %s", ErrNoMatch, re)
	case 1:
	default:
		return "", fmt.Errorf("%w: %s matches more than once", ErrMultipleMatches, re)
	}
	idx := re.SubexpIndex(placeholderGroup)
	start, end := matches[0][2*idx], matches[0][2*idx+1]
	if start < 0 {
		return "", fmt.Errorf("%w: %s matched without its placeholder group in template %q", ErrNoMatch, re, t.Raw)
	}
	return replaceSpan(content, start, end, replacement), nil
}

// ApplyTemplate parses raw and resolves it against content.
func ApplyTemplate(content, raw string, patterns PatternDict, replacements ReplacementDict) (string, error) {
	t, err := ParseTemplate(raw)
	if err != nil {
		return "", err
	}
	return ResolvePattern(content, t, patterns, replacements)
}

func replaceSpan(content string, start, end int, replacement string) string {
	return content[:start] + replacement + content[end:]
}
