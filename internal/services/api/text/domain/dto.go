// Package domain holds DTOs for text http and service contracts
package domain

// Match kinds accepted by MatchInput
const (
	MatchKindKanjiKana   = "kanji_kana"
	MatchKindHankakuKana = "hankaku_kana"
)

// NormalizeInput is the input for normalizing a string
// Text is a pointer so a missing field can be told apart from ""
type NormalizeInput struct {
	Text        *string `json:"text" validate:"omitempty,max=65536" example:"ＢＧＭ弾きます（高音質）"`
	Profile     string  `json:"profile,omitempty" validate:"omitempty,alphanum,max=32" example:"search"`
	SpaceWidth  int     `json:"space_width,omitempty" validate:"omitempty,min=1,max=9" example:"2"`
	Flags       string  `json:"flags,omitempty" validate:"omitempty,max=64" example:"-Z2"`
	EncodingIn  string  `json:"encoding_in,omitempty" validate:"omitempty,jp_encoding" example:"sjis"`
	EncodingOut string  `json:"encoding_out,omitempty" validate:"omitempty,jp_encoding" example:"utf8"`
}

// NormalizeResult is the converted text and the language guessed from it
type NormalizeResult struct {
	Text string `json:"text" example:"BGM弾きます(高音質)"`
	Lang string `json:"lang" example:"ja"`
}

// GuessInput is the input for guessing a language
type GuessInput struct {
	Text *string `json:"text" validate:"omitempty,max=65536" example:"こんにちは"`
}

// GuessResult reports the guessed language
type GuessResult struct {
	Lang string `json:"lang" example:"ja"`
}

// MatchInput is the input for locating a script run
type MatchInput struct {
	Text *string `json:"text" validate:"omitempty,max=65536" example:"abcアイウdef"`
	Kind string  `json:"kind" validate:"required,oneof=kanji_kana hankaku_kana" example:"kanji_kana"`
}

// MatchResult is the first matched run, byte offsets [Start,End)
type MatchResult struct {
	Found bool   `json:"found" example:"true"`
	Start int    `json:"start" example:"3"`
	End   int    `json:"end" example:"12"`
	Text  string `json:"text,omitempty" example:"アイウ"`
}

// ScrubInput is a batch of records to run through the tolerant adapter
type ScrubInput struct {
	Records []map[string]any `json:"records" validate:"required,min=1,max=1000"`
}

// ScrubResult carries the cleaned records under a fresh job id
type ScrubResult struct {
	JobID   string           `json:"job_id" example:"0b879f0f-4a1f-4f62-9e35-2f2e54dd44c6"`
	Records []map[string]any `json:"records"`
}
