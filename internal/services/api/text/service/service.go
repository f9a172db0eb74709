// Package service contains text workflows
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"zenhan/internal/core/jptext"
	"zenhan/internal/core/profile"
	perr "zenhan/internal/platform/errors"
	"zenhan/internal/services/api/text/domain"
)

// Service defines the service contract for text operations
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	norm     *jptext.Normalizer
	profiles *profile.Set
}

// New creates a new text service
func New(norm *jptext.Normalizer, profiles *profile.Set) *Svc {
	if norm == nil {
		panic("text.Service requires a non nil Normalizer")
	}
	if profiles == nil {
		panic("text.Service requires a non nil profile Set")
	}
	return &Svc{norm: norm, profiles: profiles}
}

// Normalize converts the text and tags it with the language guessed from
// the UTF-8 form of the result
func (s *Svc) Normalize(_ context.Context, in domain.NormalizeInput) (domain.NormalizeResult, error) {
	if in.Text == nil {
		return domain.NormalizeResult{}, perr.InvalidArgf("text is required")
	}
	opts, err := s.resolveOptions(in)
	if err != nil {
		return domain.NormalizeResult{}, err
	}

	// convert to UTF-8 first so the language guess reads real runes
	utf8Opts := opts
	utf8Opts.EncodingOut = ""
	out, err := s.norm.Normalize(*in.Text, utf8Opts)
	if err != nil {
		return domain.NormalizeResult{}, mapCoreErr(err)
	}
	lang, err := s.norm.GuessLanguage(out)
	if err != nil {
		return domain.NormalizeResult{}, mapCoreErr(err)
	}

	if opts.EncodingOut != "" && opts.EncodingOut != jptext.EncodingUTF8 {
		out, err = s.norm.Normalize(*in.Text, opts)
		if err != nil {
			return domain.NormalizeResult{}, mapCoreErr(err)
		}
	}

	return domain.NormalizeResult{Text: out, Lang: string(lang)}, nil
}

// Guess reports whether the text looks Japanese or English
func (s *Svc) Guess(_ context.Context, in domain.GuessInput) (domain.GuessResult, error) {
	if in.Text == nil {
		return domain.GuessResult{}, perr.InvalidArgf("text is required")
	}
	lang, err := s.norm.GuessLanguage(*in.Text)
	if err != nil {
		return domain.GuessResult{}, mapCoreErr(err)
	}
	return domain.GuessResult{Lang: string(lang)}, nil
}

// Match locates the first run of the requested script
func (s *Svc) Match(_ context.Context, in domain.MatchInput) (domain.MatchResult, error) {
	if in.Text == nil {
		return domain.MatchResult{}, perr.InvalidArgf("text is required")
	}

	var (
		m  jptext.Match
		ok bool
	)
	switch in.Kind {
	case domain.MatchKindKanjiKana:
		m, ok = jptext.MatchKanjiKana(*in.Text)
	case domain.MatchKindHankakuKana:
		m, ok = jptext.MatchHankakuKana(*in.Text)
	default:
		return domain.MatchResult{}, perr.InvalidArgf("unknown match kind %q", in.Kind)
	}
	if !ok {
		return domain.MatchResult{}, nil
	}
	return domain.MatchResult{Found: true, Start: m.Start, End: m.End, Text: m.Text}, nil
}

// Scrub runs every field of every record through the tolerant adapter
// a single conversion failure fails the whole batch, no partial results
func (s *Svc) Scrub(_ context.Context, in domain.ScrubInput) (domain.ScrubResult, error) {
	out := make([]map[string]any, 0, len(in.Records))
	for i, rec := range in.Records {
		cleaned := make(map[string]any, len(rec))
		for k, v := range rec {
			cv, err := s.norm.TryNormalize(v)
			if err != nil {
				return domain.ScrubResult{}, perr.ConversionWrap(err, "record %d field %q", i, k)
			}
			cleaned[k] = cv
		}
		out = append(out, cleaned)
	}
	return domain.ScrubResult{JobID: uuid.NewString(), Records: out}, nil
}

// probeFixture folds to "ZEN HAN" when the engine is healthy
const probeFixture = "ＺＥＮ　ＨＡＮ"

// Probe converts a fixture through the engine and verifies the fold
func (s *Svc) Probe(_ context.Context) error {
	out, err := s.norm.Normalize(probeFixture, jptext.Options{SpaceWidth: 1})
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "engine probe")
	}
	if out != "ZEN HAN" {
		return perr.Unavailablef("engine probe produced %q", out)
	}
	return nil
}

// resolveOptions merges a named profile with explicit request fields
// explicit fields win
func (s *Svc) resolveOptions(in domain.NormalizeInput) (jptext.Options, error) {
	var opts jptext.Options
	if in.Profile != "" {
		p, ok := s.profiles.Get(in.Profile)
		if !ok {
			return jptext.Options{}, perr.InvalidArgf("unknown profile %q", in.Profile)
		}
		opts = p
	}
	if in.SpaceWidth != 0 {
		opts.SpaceWidth = in.SpaceWidth
	}
	if in.Flags != "" {
		opts.Flags = in.Flags
	}
	if in.EncodingIn != "" {
		opts.EncodingIn = jptext.Encoding(in.EncodingIn)
	}
	if in.EncodingOut != "" {
		opts.EncodingOut = jptext.Encoding(in.EncodingOut)
	}
	return opts, nil
}

// mapCoreErr lifts core sentinel errors onto wire codes
func mapCoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jptext.ErrInvalidArgument):
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid conversion options")
	case errors.Is(err, jptext.ErrConversion):
		return perr.Wrap(err, perr.ErrorCodeConversion, "conversion failed")
	default:
		return err
	}
}
