package jsonlens

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

var errMalformed = errors.New("jsonlens: malformed document")

// parseValue decodes a single JSON document into a Value. It is total:
// malformed input and trailing content report ok=false. Numbers are kept
// as exact decimals, and object member order follows the document.
func parseValue(data []byte) (Value, bool) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, false
	}
	return v, true
}

func decodeValue(dec *j.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, errMalformed
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *j.Decoder, tok any) (Value, error) {
	switch t := tok.(type) {
	case j.Delim:
		switch t {
		case '{':
			var ms Members
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, errMalformed
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, errMalformed
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				ms = append(ms, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, errMalformed
			}
			return objectOf(ms), nil
		case '[':
			elems := []Value{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, v)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, errMalformed
			}
			return Value{kind: KindArray, arr: elems}, nil
		}
		return Value{}, errMalformed
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case j.Number:
		v, ok := NumberString(string(t))
		if !ok {
			return Value{}, errMalformed
		}
		return v, nil
	case float64:
		// Decoders hand back float64 when UseNumber is not in effect.
		v, ok := NumberString(strconv.FormatFloat(t, 'g', -1, 64))
		if !ok {
			return Value{}, errMalformed
		}
		return v, nil
	case nil:
		return NullValue(), nil
	}
	return Value{}, errMalformed
}
