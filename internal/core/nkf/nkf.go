// Package nkf is a small charset and width conversion engine behind an
// nkf-style flag string
//
// Flag surface
//   -j -e -s -w   output encoding ISO-2022-JP EUC-JP Shift_JIS UTF-8
//   -J -E -S -W   input encoding
//   -Z<n>         fold East Asian widths and expand U+3000 to n ASCII spaces
//
// UTF-8 is the native representation, so -w and -W select no transcoding.
// Flags may be bundled ("-wZ2") or given separately ("-w -Z2"). Anything
// outside this set is rejected
package nkf

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Engine converts text according to a flag string. The zero value is ready
// and safe for concurrent use; transforms are built per call
type Engine struct{}

// New constructs an Engine
func New() *Engine { return &Engine{} }

// request is a parsed flag string
type request struct {
	in       byte // J E S W, or 0 when unset
	out      byte // j e s w, or 0 when unset
	fold     bool
	spaceRep int // ASCII spaces per U+3000 when folding; 0 keeps U+3000
}

// Convert runs text through the conversions flags select, in order: decode
// the input charset, fold widths, encode the output charset. Unknown or
// malformed flags fail the whole call
func (e *Engine) Convert(flags, text string) (string, error) {
	req, err := parseFlags(flags)
	if err != nil {
		return "", err
	}
	s := text
	if dec := decoderFor(req.in); dec != nil {
		s, err = dec.String(s)
		if err != nil {
			return "", fmt.Errorf("nkf: decode: %w", err)
		}
	}
	if req.fold {
		s = foldWidth(s, req.spaceRep)
	}
	if enc := encoderFor(req.out); enc != nil {
		s, err = enc.String(s)
		if err != nil {
			return "", fmt.Errorf("nkf: encode: %w", err)
		}
	}
	return s, nil
}

// parseFlags splits flags on whitespace and walks each token character by
// character, so bundled and separate spellings parse the same
func parseFlags(flags string) (request, error) {
	var req request
	for _, tok := range strings.Fields(flags) {
		if len(tok) < 2 || tok[0] != '-' {
			return request{}, fmt.Errorf("nkf: malformed flag %q", tok)
		}
		body := tok[1:]
		for i := 0; i < len(body); i++ {
			switch c := body[i]; c {
			case 'j', 'e', 's', 'w':
				req.out = c
			case 'J', 'E', 'S', 'W':
				req.in = c
			case 'Z':
				req.fold = true
				req.spaceRep = 0
				if i+1 < len(body) && body[i+1] >= '0' && body[i+1] <= '9' {
					i++
					req.spaceRep = int(body[i] - '0')
				}
			default:
				return request{}, fmt.Errorf("nkf: unknown flag %q in %q", string(rune(c)), tok)
			}
		}
	}
	return req, nil
}

func decoderFor(c byte) *encoding.Decoder {
	switch c {
	case 'J':
		return japanese.ISO2022JP.NewDecoder()
	case 'E':
		return japanese.EUCJP.NewDecoder()
	case 'S':
		return japanese.ShiftJIS.NewDecoder()
	default:
		// W or unset: input is already UTF-8
		return nil
	}
}

func encoderFor(c byte) *encoding.Encoder {
	switch c {
	case 'j':
		return japanese.ISO2022JP.NewEncoder()
	case 'e':
		return japanese.EUCJP.NewEncoder()
	case 's':
		return japanese.ShiftJIS.NewEncoder()
	default:
		return nil
	}
}

// foldWidth maps every rune to its canonical width: fullwidth Latin and
// digits become ASCII, halfwidth kana becomes standard kana. U+3000
// decomposes to a plain space under the fold, so ideographic spaces are
// expanded up front when spaceRep asks for spaces and shielded from the
// fold when it does not
func foldWidth(s string, spaceRep int) string {
	if spaceRep > 0 {
		s = strings.ReplaceAll(s, "　", strings.Repeat(" ", spaceRep))
		return foldOne(s)
	}
	parts := strings.Split(s, "　")
	for i, p := range parts {
		parts[i] = foldOne(p)
	}
	return strings.Join(parts, "　")
}

// foldOne folds one segment. The width fold turns halfwidth voiced sound
// marks into combining marks, so a canonical compose follows to produce
// the precomposed kana
func foldOne(s string) string {
	ns, _, _ := transform.String(width.Fold, s)
	return norm.NFC.String(ns)
}
