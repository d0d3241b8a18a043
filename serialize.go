package jsonlens

import (
	j "github.com/goccy/go-json"
)

// appendValue renders v as compact JSON onto dst. Member order is the
// stored insertion order and numbers are written in plain decimal notation,
// so a parsed document round-trips with its keys and numeric values intact.
func appendValue(dst []byte, v Value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, v.num.Text('f')...)
	case KindString:
		return appendQuoted(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, e)
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, m.Key)
			dst = append(dst, ':')
			dst = appendValue(dst, m.Value)
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

// appendQuoted writes s as a JSON string literal, delegating escaping to
// the JSON encoder.
func appendQuoted(dst []byte, s string) []byte {
	q, err := j.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail; keep the output well-formed anyway.
		return append(dst, `""`...)
	}
	return append(dst, q...)
}
