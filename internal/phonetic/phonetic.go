// Package phonetic builds compact Latin-alphabet sidecars for CJK text so
// that pinyin-style queries can match entries whose names have no Latin
// spelling. Each indexed fragment packs into "syllables" or
// "syllables|initials"; multiple fragments join with single spaces.
package phonetic

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// Normalize converts one text fragment into its pinyin syllable string and
// initials string. Characters without a phonetic reading are skipped.
// ok is false when no character decomposes at all.
func Normalize(fragment string) (syllables, initials string, ok bool) {
	args := pinyin.NewArgs()

	var syl strings.Builder
	var ini strings.Builder
	for _, readings := range pinyin.Pinyin(fragment, args) {
		if len(readings) == 0 {
			continue
		}
		reading := strings.ToLower(readings[0])
		if reading == "" {
			continue
		}
		syl.WriteString(reading)
		ini.WriteByte(reading[0])
	}

	if syl.Len() == 0 {
		return "", "", false
	}
	return syl.String(), ini.String(), true
}

// packEntry renders one fragment's sidecar. Initials are dropped when they
// carry no extra information over the full syllable string.
func packEntry(syllables, initials string) string {
	if initials != "" && initials != syllables {
		return syllables + "|" + initials
	}
	return syllables
}

// BuildIndex normalizes each fragment independently and joins the non-empty
// packed results with single spaces. Returns "" when nothing decomposes.
func BuildIndex(fragments ...string) string {
	var parts []string
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		syllables, initials, ok := Normalize(fragment)
		if !ok {
			continue
		}
		parts = append(parts, packEntry(syllables, initials))
	}
	return strings.Join(parts, " ")
}

// SplitEntry splits one packed index entry back into its syllable and
// initials strings. Either side may be empty.
func SplitEntry(packed string) (syllables, initials string) {
	if full, init, found := strings.Cut(packed, "|"); found {
		return full, init
	}
	return packed, ""
}
