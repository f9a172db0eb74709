// Package jptext normalizes the width of Japanese text and guesses language
//
// Pipeline for one Normalize call
// 1 resolve options apply defaults and fold encoding selections into flags
// 2 partition the input on runs of Other Symbol code points
// 3 convert every non symbol span through the engine
// 4 reassemble spans in input order
//
// Symbol runs (emoji, pictographs) never enter the engine and come back
// byte for byte. Concatenating the spans always rebuilds the input, so
// nothing is lost at the seams
package jptext

import (
	"errors"
	"fmt"
	"strings"

	"zenhan/internal/core/nkf"
)

// Error identities callers can test with errors.Is
var (
	// ErrInvalidArgument reports options or input the caller got wrong
	ErrInvalidArgument = errors.New("jptext: invalid argument")
	// ErrConversion reports a failure inside the conversion engine
	ErrConversion = errors.New("jptext: conversion failed")
)

// Converter is the conversion engine seam. Convert applies the behavior
// selected by flags to text and returns the converted text
type Converter interface {
	Convert(flags, text string) (string, error)
}

// Normalizer runs width normalization over a conversion engine. Safe for
// concurrent use
type Normalizer struct {
	conv Converter
}

// New constructs a Normalizer over conv. A nil conv selects the built-in
// engine
func New(conv Converter) *Normalizer {
	if conv == nil {
		conv = nkf.New()
	}
	return &Normalizer{conv: conv}
}

// defaultNormalizer backs the package level functions
var defaultNormalizer = New(nil)

// Normalize width-normalizes text according to opts. Runs of Other Symbol
// code points pass through untouched; everything between them goes through
// the engine. An engine failure on any span fails the whole call
func (n *Normalizer) Normalize(text string, opts Options) (string, error) {
	res, err := opts.resolve()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	flags := res.engineFlags()
	var b strings.Builder
	b.Grow(len(text))

	if res.singleSpan {
		if err := n.convertInto(&b, flags, text); err != nil {
			return "", err
		}
		return b.String(), nil
	}

	last := 0
	for _, span := range reSymbolRun.FindAllStringIndex(text, -1) {
		if err := n.convertInto(&b, flags, text[last:span[0]]); err != nil {
			return "", err
		}
		b.WriteString(text[span[0]:span[1]])
		last = span[1]
	}
	if err := n.convertInto(&b, flags, text[last:]); err != nil {
		return "", err
	}
	return b.String(), nil
}

// convertInto converts one span and appends it to b. Empty spans occur
// between adjacent symbol runs and at the edges; they skip the engine
func (n *Normalizer) convertInto(b *strings.Builder, flags, span string) error {
	if span == "" {
		return nil
	}
	out, err := n.conv.Convert(flags, span)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConversion, err)
	}
	b.WriteString(out)
	return nil
}

// Normalize width-normalizes text with the built-in engine
func Normalize(text string, opts Options) (string, error) {
	return defaultNormalizer.Normalize(text, opts)
}
