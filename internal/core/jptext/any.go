package jptext

import "strings"

// TryNormalize normalizes string-shaped values and passes everything else
// through. Strings and byte slices are coerced to text, width-normalized
// with single-space expansion, and trimmed of surrounding whitespace. Any
// other dynamic type, nil included, comes back unchanged with a nil error,
// so heterogeneous records can be scrubbed field by field without type
// checks at the call site
func (n *Normalizer) TryNormalize(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return n.scrub(t)
	case []byte:
		return n.scrub(string(t))
	default:
		return v, nil
	}
}

func (n *Normalizer) scrub(s string) (any, error) {
	ns, err := n.Normalize(s, Options{SpaceWidth: 1})
	if err != nil {
		return nil, err
	}
	return strings.TrimSpace(ns), nil
}

// TryNormalize scrubs with the built-in engine
func TryNormalize(v any) (any, error) {
	return defaultNormalizer.TryNormalize(v)
}
