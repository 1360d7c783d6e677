package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCJK(t *testing.T) {
	syllables, initials, ok := Normalize("微信")
	require.True(t, ok)
	assert.Equal(t, "weixin", syllables)
	assert.Equal(t, "wx", initials)
}

func TestNormalizeASCIIReturnsNothing(t *testing.T) {
	_, _, ok := Normalize("notepad")
	assert.False(t, ok, "pure ASCII has no phonetic reading")

	_, _, ok = Normalize("")
	assert.False(t, ok)
}

func TestNormalizeMixedSkipsNonPhonetic(t *testing.T) {
	// Latin characters interleaved with hanzi are skipped, not errors.
	syllables, initials, ok := Normalize("QQ拼音")
	require.True(t, ok)
	assert.Equal(t, "pinyin", syllables)
	assert.Equal(t, "py", initials)
}

func TestBuildIndexPacksFragments(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{
			name:      "two character name",
			fragments: []string{"微信"},
			want:      "weixin|wx",
		},
		{
			name:      "single syllable drops equal initials",
			fragments: []string{"阿"},
			want:      "a",
		},
		{
			name:      "multiple fragments join with space",
			fragments: []string{"微信", "工具"},
			want:      "weixin|wx gongju|gj",
		},
		{
			name:      "ascii fragments contribute nothing",
			fragments: []string{"chrome", "微信"},
			want:      "weixin|wx",
		},
		{
			name:      "all ascii yields empty",
			fragments: []string{"chrome", "firefox"},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildIndex(tt.fragments...))
		})
	}
}

func TestSplitEntry(t *testing.T) {
	full, initials := SplitEntry("weixin|wx")
	assert.Equal(t, "weixin", full)
	assert.Equal(t, "wx", initials)

	full, initials = SplitEntry("a")
	assert.Equal(t, "a", full)
	assert.Equal(t, "", initials)
}
