package bumpversion

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tpl, err := ParseTemplate(`^__version__ = "{old_version->new_version}"$`)
	require.NoError(t, err)
	assert.Equal(t, `^__version__ = "`, tpl.Prefix)
	assert.Equal(t, KeyOldVersion, tpl.SourceKey)
	assert.Equal(t, KeyNewVersion, tpl.DestKey)
	assert.Equal(t, `"$`, tpl.Suffix)
}

func TestParseTemplatePlaceholderCount(t *testing.T) {
	for _, raw := range []string{
		`^__version__ = "1.2.3"`,
		`{old_version}`,
		`{old_version->new_version} and {new_milestone->next_milestone}`,
	} {
		_, err := ParseTemplate(raw)
		assert.ErrorIs(t, err, ErrNoMatch, raw)
	}
}

func TestApplyTemplate(t *testing.T) {
	patterns := PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")}
	replacements := ReplacementDict{KeyNewVersion: "1.3.0"}

	got, err := ApplyTemplate(`__version__ = "1.2.3"`+"\n",
		`^__version__ = "{old_version->new_version}"`, patterns, replacements)
	require.NoError(t, err)
	assert.Equal(t, `__version__ = "1.3.0"`+"\n", got)
}

func TestApplyTemplateMultiline(t *testing.T) {
	content := "# header\n       rev: 1.2.3\n           rev: 1.2.3\nfooter\n"
	patterns := PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")}
	replacements := ReplacementDict{KeyNewVersion: "1.2.4"}

	got, err := ApplyTemplate(content, `^       rev: {old_version->new_version}`, patterns, replacements)
	require.NoError(t, err)
	assert.Equal(t, "# header\n       rev: 1.2.4\n           rev: 1.2.3\nfooter\n", got)

	got, err = ApplyTemplate(got, `^           rev: {old_version->new_version}`, patterns, replacements)
	require.NoError(t, err)
	assert.Equal(t, "# header\n       rev: 1.2.4\n           rev: 1.2.4\nfooter\n", got)
}

func TestApplyTemplateRoundTrip(t *testing.T) {
	content := ".. _next-milestone: https://github.com/akaihola/darker/milestone/7\n"
	forward, err := ApplyTemplate(content,
		`milestone/{new_milestone->next_milestone}$`,
		PatternDict{KeyNewMilestone: "7"},
		ReplacementDict{KeyNextMilestone: "12"})
	require.NoError(t, err)
	assert.Equal(t, ".. _next-milestone: https://github.com/akaihola/darker/milestone/12\n", forward)

	back, err := ApplyTemplate(forward,
		`milestone/{new_milestone->next_milestone}$`,
		PatternDict{KeyNewMilestone: "12"},
		ReplacementDict{KeyNextMilestone: "7"})
	require.NoError(t, err)
	assert.Equal(t, content, back)
}

func TestApplyTemplateErrors(t *testing.T) {
	patterns := PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")}
	replacements := ReplacementDict{KeyNewVersion: "1.2.4"}

	tests := []struct {
		name    string
		content string
		raw     string
		err     error
	}{
		{"no match", "version = 1.0.0\n", `^version = {old_version->new_version}`, ErrNoMatch},
		{"multiple matches", "v 1.2.3\nv 1.2.3\n", `^v {old_version->new_version}`, ErrMultipleMatches},
		{"unknown source", "v 1.2.3\n", `^v {new_milestone->new_version}`, ErrUnknownKey},
		{"unknown destination", "v 1.2.3\n", `^v {old_version->next_milestone}`, ErrUnknownKey},
		{"no placeholder", "v 1.2.3\n", `^v 1.2.3`, ErrNoMatch},
		{"alternation bypasses placeholder", "version: 1.2.3\nrelease=old\n", `^release=old|^tag {old_version->new_version}`, ErrNoMatch},
		{"optional placeholder group", "tag \n", `^tag ({old_version->new_version})?$`, ErrNoMatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyTemplate(tc.content, tc.raw, patterns, replacements)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// Groups in the prefix do not shift the replaced span.
func TestApplyTemplateGroupInPrefix(t *testing.T) {
	patterns := PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")}
	replacements := ReplacementDict{KeyNewVersion: "1.2.4"}

	got, err := ApplyTemplate("version: 1.2.3\n", `^(rev|version): {old_version->new_version}$`, patterns, replacements)
	require.NoError(t, err)
	assert.Equal(t, "version: 1.2.4\n", got)
}

func TestApplyTemplateUnmatchedPlaceholderGroup(t *testing.T) {
	patterns := PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")}
	replacements := ReplacementDict{KeyNewVersion: "1.2.4"}

	raw := `^release=old|^tag {old_version->new_version}`
	_, err := ApplyTemplate("version: 1.2.3\nrelease=old\n", raw, patterns, replacements)
	require.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), raw)
}

// The version is escaped, so its dots only match literal dots.
func TestApplyTemplateEscapedPattern(t *testing.T) {
	patterns := PatternDict{KeyOldVersion: regexp.QuoteMeta("1.2.3")}
	replacements := ReplacementDict{KeyNewVersion: "1.2.4"}

	_, err := ApplyTemplate("v 1x2x3\n", `^v {old_version->new_version}`, patterns, replacements)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestTemplateRegexpInvalid(t *testing.T) {
	tpl, err := ParseTemplate(`([{old_version->new_version}`)
	require.NoError(t, err)
	_, err = tpl.Regexp(`\d+`)
	assert.Error(t, err)
}
