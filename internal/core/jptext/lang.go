package jptext

// Lang is a guessed language code
type Lang string

// Languages GuessLanguage can report
const (
	LangJapanese Lang = "ja"
	LangEnglish  Lang = "en"
)

// GuessLanguage reports LangJapanese when the width-normalized text
// contains a run of kana or kanji and LangEnglish otherwise. Normalization
// runs with single-space expansion so halfwidth kana counts as Japanese
func (n *Normalizer) GuessLanguage(text string) (Lang, error) {
	ns, err := n.Normalize(text, Options{SpaceWidth: 1})
	if err != nil {
		return "", err
	}
	if _, ok := MatchKanjiKana(ns); ok {
		return LangJapanese, nil
	}
	return LangEnglish, nil
}

// GuessLanguage guesses with the built-in engine
func GuessLanguage(text string) (Lang, error) {
	return defaultNormalizer.GuessLanguage(text)
}
