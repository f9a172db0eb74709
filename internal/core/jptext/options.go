package jptext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Encoding identifies a charset the conversion engine can read or write
type Encoding string

// Encodings accepted by Options. Empty means UTF-8 passthrough
const (
	EncodingJIS   Encoding = "jis"
	EncodingEUCJP Encoding = "eucjp"
	EncodingSJIS  Encoding = "sjis"
	EncodingUTF8  Encoding = "utf8"
)

// encodingFlags spells each encoding as the engine's input and output
// selector, in that order
var encodingFlags = map[Encoding][2]string{
	EncodingJIS:   {"-J", "-j"},
	EncodingEUCJP: {"-E", "-e"},
	EncodingSJIS:  {"-S", "-s"},
	EncodingUTF8:  {"-W", "-w"},
}

// defaultSpaceWidth is the U+3000 expansion used when SpaceWidth is unset
const defaultSpaceWidth = 2

// maxSpaceWidth caps SpaceWidth at what the single digit width flag can carry
const maxSpaceWidth = 9

// reDirectionFlag matches the engine's charset selector flags
var reDirectionFlag = regexp.MustCompile(`-[jeswJESW]`)

// Options control one normalization run. The zero value asks for the
// defaults: no extra flags, UTF-8 in and out, double-space expansion of
// the ideographic space
type Options struct {
	// Flags are extra engine flags, passed through after the width flag
	Flags string

	// EncodingIn and EncodingOut select the engine's input and output
	// charsets. Empty means UTF-8
	EncodingIn  Encoding
	EncodingOut Encoding

	// SpaceWidth is how many ASCII spaces replace one ideographic space
	// U+3000. Zero means the default of 2
	SpaceWidth int
}

// Validate reports whether o would resolve. It is what config loaders call
// before accepting caller-supplied options
func (o Options) Validate() error {
	_, err := o.resolve()
	return err
}

// resolved is an Options after defaulting and encoding-flag expansion
type resolved struct {
	flags      string
	spaceWidth int
	needsUTF8  bool
	singleSpan bool
}

// resolve validates o, fills defaults, and folds the encoding selections
// into the flag string. When the merged flags carry no charset selector the
// engine later gets a UTF-8 output flag prepended, which keeps plain calls
// from ever transcoding
func (o Options) resolve() (resolved, error) {
	sw := o.SpaceWidth
	if sw == 0 {
		sw = defaultSpaceWidth
	}
	if sw < 1 || sw > maxSpaceWidth {
		return resolved{}, fmt.Errorf("%w: space width %d", ErrInvalidArgument, o.SpaceWidth)
	}

	flags := o.Flags
	if o.EncodingIn != "" {
		f, ok := encodingFlags[o.EncodingIn]
		if !ok {
			return resolved{}, fmt.Errorf("%w: input encoding %q", ErrInvalidArgument, o.EncodingIn)
		}
		flags += " " + f[0]
	}
	if o.EncodingOut != "" {
		f, ok := encodingFlags[o.EncodingOut]
		if !ok {
			return resolved{}, fmt.Errorf("%w: output encoding %q", ErrInvalidArgument, o.EncodingOut)
		}
		flags += " " + f[1]
	}
	flags = strings.TrimSpace(flags)

	return resolved{
		flags:      flags,
		spaceWidth: sw,
		needsUTF8:  !reDirectionFlag.MatchString(flags),
		// a legacy input charset cannot be partitioned by Unicode class,
		// so the whole input rides through the engine as one span
		singleSpan: o.EncodingIn != "" && o.EncodingIn != EncodingUTF8,
	}, nil
}

// engineFlags composes the final flag string: the UTF-8 safety flag when no
// charset selector is present, then the width flag, then the extras
func (r resolved) engineFlags() string {
	parts := make([]string, 0, 3)
	if r.needsUTF8 {
		parts = append(parts, "-w")
	}
	parts = append(parts, "-Z"+strconv.Itoa(r.spaceWidth))
	if r.flags != "" {
		parts = append(parts, r.flags)
	}
	return strings.Join(parts, " ")
}
