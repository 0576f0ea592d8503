// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an ordered JSON object. Opaque manifest values (config, extra,
// autoload options and so on) are decoded into it so that key order survives
// a parse/serialize round trip.
type Object = orderedmap.OrderedMap[string, any]

// Links maps package names to version constraints, in document order.
// It backs require, require-dev, conflict, replace, provide and suggest.
type Links = orderedmap.OrderedMap[string, string]

// NewObject returns an empty Object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// NewLinks returns an empty Links, optionally seeded with name/constraint pairs.
func NewLinks(pairs ...orderedmap.Pair[string, string]) *Links {
	return orderedmap.New[string, string](orderedmap.WithInitialData(pairs...))
}

// Link is a shorthand for building the pairs passed to NewLinks.
func Link(name, constraint string) orderedmap.Pair[string, string] {
	return orderedmap.Pair[string, string]{Key: name, Value: constraint}
}

// decodeJSON decodes data into a tree of *Object, []any, string,
// json.Number, bool and nil values. Text that encoding/json would replace
// with U+FFFD is rejected instead.
func decodeJSON(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("invalid UTF-8 in input")
	}
	if err := checkSurrogates(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}

	return value, nil
}

// checkSurrogates fails on a \u escape of a surrogate half that is not part
// of a high/low pair. Other escapes are left to the decoder.
func checkSurrogates(data []byte) error {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		i++
		if i >= len(data) || data[i] != 'u' {
			continue
		}

		r, ok := escapedRune(data, i-1)
		if !ok || !utf16.IsSurrogate(r) {
			continue
		}
		if r < 0xdc00 {
			if low, ok := escapedRune(data, i+5); ok && utf16.DecodeRune(r, low) != utf8.RuneError {
				i += 10
				continue
			}
		}
		return fmt.Errorf("unpaired surrogate %q at offset %d", data[i-1:i+5], i-1)
	}
	return nil
}

// escapedRune reads the \uXXXX escape starting at data[at].
func escapedRune(data []byte, at int) (rune, bool) {
	if at+6 > len(data) || data[at] != '\\' || data[at+1] != 'u' {
		return 0, false
	}
	v, err := strconv.ParseUint(string(data[at+2:at+6]), 16, 16)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewObject()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
}

// Encoder writes flattened manifest values as indented JSON. Keys keep their
// insertion order, and neither slashes, HTML characters nor non-ASCII text
// are escaped.
type Encoder struct {
	w      io.Writer
	indent string
}

// NewEncoder returns an Encoder writing to w with a four space indent.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, indent: "    "}
}

// SetIndent sets the string repeated once per nesting level. An empty
// indent produces compact output.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// Encode writes v followed by a newline.
func (e *Encoder) Encode(v any) error {
	var compact bytes.Buffer
	if err := writeCompact(&compact, v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}

	out := &compact
	if e.indent != "" {
		out = &bytes.Buffer{}
		if err := json.Indent(out, compact.Bytes(), "", e.indent); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
	}
	out.WriteByte('\n')

	if _, err := e.w.Write(out.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func writeCompact(buf *bytes.Buffer, v any) error {
	switch value := v.(type) {
	case *Object:
		if value == nil {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for pair := value.Oldest(); pair != nil; pair = pair.Next() {
			if pair != value.Oldest() {
				buf.WriteByte(',')
			}
			if err := writeScalar(buf, pair.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeCompact(buf, pair.Value); err != nil {
				return fmt.Errorf("%s: %w", pair.Key, err)
			}
		}
		buf.WriteByte('}')
	case *Links:
		if value == nil {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		for pair := value.Oldest(); pair != nil; pair = pair.Next() {
			if pair != value.Oldest() {
				buf.WriteByte(',')
			}
			if err := writeScalar(buf, pair.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeScalar(buf, pair.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i := range value {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCompact(buf, value[i]); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	default:
		return writeScalar(buf, v)
	}

	return nil
}

// writeScalar covers strings, numbers and booleans plus any plain Go value
// a caller stored in an opaque field.
func writeScalar(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}

	buf.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
	return nil
}
