// internal/core/jptext/lang_test.go
package jptext

import "testing"

func TestGuessLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{in: "Hello world", want: LangEnglish},
		{in: "こんにちは", want: LangJapanese},
		{in: "日本語のテキスト", want: LangJapanese},
		{in: "ｶﾀｶﾅ", want: LangJapanese}, // promoted to standard kana before the match
		{in: "ＡＢＣ１２３", want: LangEnglish},
		{in: "BGM弾きます🐏🌙【高音質】", want: LangJapanese},
		{in: "1234 5678", want: LangEnglish},
		{in: "🐏🌙", want: LangEnglish},
		{in: "mixed 日本語 and english", want: LangJapanese},
		{in: "", want: LangEnglish},
	}

	for _, tc := range tests {
		got, err := GuessLanguage(tc.in)
		if err != nil {
			t.Fatalf("GuessLanguage(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("GuessLanguage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGuessLanguage_EngineFailure(t *testing.T) {
	n := New(failConv{})

	if _, err := n.GuessLanguage("abc"); err == nil {
		t.Fatalf("GuessLanguage expected error, got nil")
	}
}
