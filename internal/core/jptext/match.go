package jptext

import "regexp"

// Precompiled patterns, built once before any concurrent use
var (
	// reSymbolRun matches maximal runs of Other Symbol code points, the
	// emoji and pictograph class Normalize leaves untouched
	reSymbolRun = regexp.MustCompile(`\p{So}+`)

	// reKanjiKana matches runs of hiragana, katakana, the prolonged sound
	// marks, the kana iteration marks, and Han ideographs. Halfwidth kana
	// other than the halfwidth prolonged sound mark stay outside, as does
	// fullwidth punctuation
	reKanjiKana = regexp.MustCompile(`[\x{3041}-\x{3096}\x{309D}\x{309E}\x{30A1}-\x{30FA}\x{30FC}-\x{30FE}\x{FF70}\p{Han}]+`)

	// reHankakuKana matches runs inside the JIS X0201 halfwidth kana block
	reHankakuKana = regexp.MustCompile(`[\x{FF61}-\x{FF9F}]+`)
)

// Match is one matched run, byte offsets [Start,End) into the input
type Match struct {
	Start int
	End   int
	Text  string
}

// MatchKanjiKana reports the first run of Japanese-script characters in s
func MatchKanjiKana(s string) (Match, bool) {
	return matchFirst(reKanjiKana, s)
}

// MatchHankakuKana reports the first run of halfwidth kana in s
func MatchHankakuKana(s string) (Match, bool) {
	return matchFirst(reHankakuKana, s)
}

func matchFirst(re *regexp.Regexp, s string) (Match, bool) {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	return Match{Start: loc[0], End: loc[1], Text: s[loc[0]:loc[1]]}, true
}
