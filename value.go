package xdgentries

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ValueKind identifies the declared type of a desktop entry value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindLocaleString
	KindIconString
	KindBool
	KindNumeric
	KindList
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindLocaleString:
		return "localestring"
	case KindIconString:
		return "iconstring"
	case KindBool:
		return "boolean"
	case KindNumeric:
		return "numeric"
	case KindList:
		return "list"
	}
	return "unknown"
}

// Value is a decoded desktop entry value tagged with its kind.
//
// The kind is carried alongside the payload instead of being discarded
// after decoding, so that stricter per-kind validation can be added
// later without changing call sites. Values are immutable once
// constructed.
type Value struct {
	// Kind of this value.
	Kind ValueKind

	// Text payload for KindString, KindLocaleString and KindIconString.
	Str string

	// Payload for KindBool.
	Bool bool

	// Payload for KindNumeric.
	Num float64

	// Elements for KindList.
	Items []Value
}

// String renders the value back to its desktop entry text form.
// List elements are joined with ';' terminators.
func (v Value) String() string {
	switch v.Kind {
	case KindString, KindLocaleString, KindIconString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindNumeric:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindList:
		var out strings.Builder
		for _, item := range v.Items {
			out.WriteString(item.String())
			out.WriteByte(';')
		}
		return out.String()
	}
	return ""
}

// Decoder converts raw value bytes from key/value lines into typed
// values. The zero value is ready to use and accepts any valid UTF-8
// for all three string kinds. A Decoder is stateless and safe for
// concurrent use.
type Decoder struct {
	// StrictASCII rejects non-ASCII bytes in values declared as plain
	// strings. The desktop entry specification restricts the string
	// type to ASCII; by default the decoder accepts any valid UTF-8
	// there as well, since ASCII content always passes either way.
	StrictASCII bool
}

// DecodeText interprets raw as UTF-8 text for a key declared as kind.
//
// Invalid UTF-8 fails with *EncodingError for every kind. When
// StrictASCII is set, non-ASCII bytes additionally fail with
// *ASCIIError for KindString. The function is pure: no side effects,
// no retained references to raw.
func (d Decoder) DecodeText(raw []byte, kind ValueKind) (string, error) {
	if off := invalidAt(raw); off >= 0 {
		return "", &EncodingError{Offset: off}
	}
	if d.StrictASCII && kind == KindString {
		for i := 0; i < len(raw); i++ {
			if raw[i] > 0x7F {
				return "", &ASCIIError{Offset: i}
			}
		}
	}
	return string(raw), nil
}

// invalidAt returns the byte offset of the first invalid UTF-8
// sequence in b, or -1 if b is valid.
func invalidAt(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func (d Decoder) parseString(s string) (Value, error) {
	text, err := d.DecodeText([]byte(s), KindString)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindString, Str: text}, nil
}

func (d Decoder) parseLocaleString(s string) (Value, error) {
	text, err := d.DecodeText([]byte(s), KindLocaleString)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindLocaleString, Str: text}, nil
}

func (d Decoder) parseIconString(s string) (Value, error) {
	text, err := d.DecodeText([]byte(s), KindIconString)
	if err != nil {
		return Value{}, err
	}
	return Value{Kind: KindIconString, Str: text}, nil
}

// parseBool accepts exactly "true" and "false", per the desktop entry
// specification.
func (d Decoder) parseBool(s string) (Value, error) {
	switch s {
	case "true":
		return Value{Kind: KindBool, Bool: true}, nil
	case "false":
		return Value{Kind: KindBool, Bool: false}, nil
	}
	return Value{}, fmt.Errorf("invalid boolean %q", s)
}

func (d Decoder) parseNumeric(s string) (Value, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", s)
	}
	return Value{Kind: KindNumeric, Num: n}, nil
}

func (d Decoder) parseList(s string, elem func(string) (Value, error)) (Value, error) {
	var items []Value
	for _, part := range splitList(s) {
		v, err := elem(part)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Value{Kind: KindList, Items: items}, nil
}

// splitList splits a value on ';' delimiters, skipping delimiters
// escaped as '\;'. Escapes are left in place, and a trailing empty
// element after a final ';' is dropped.
func splitList(s string) []string {
	var items []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' && (i == 0 || s[i-1] != '\\') {
			items = append(items, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		items = append(items, s[start:])
	}
	return items
}

func hasListDelimiter(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == ';' && (i == 0 || s[i-1] != '\\') {
			return true
		}
	}
	return false
}

// probe parses a value of unknown declared type, trying the stricter
// kinds first. parseString only fails on encoding errors, so probing
// always terminates with a result or an *EncodingError.
func (d Decoder) probe(s string) (Value, error) {
	if v, err := d.parseBool(s); err == nil {
		return v, nil
	}
	if v, err := d.parseNumeric(s); err == nil {
		return v, nil
	}
	return d.parseString(s)
}

// tryTypes handles keys with no declared type. A scalar stays a
// scalar; a ';'-delimited value becomes a list whose element type is
// fixed by its first element.
func (d Decoder) tryTypes(s string) (Value, error) {
	if !hasListDelimiter(s) {
		return d.probe(s)
	}
	parts := splitList(s)
	first, err := d.probe(parts[0])
	if err != nil {
		return Value{}, err
	}
	elem := d.parserFor(first.Kind)
	items := []Value{first}
	for _, part := range parts[1:] {
		v, err := elem(part)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Value{Kind: KindList, Items: items}, nil
}

func (d Decoder) parserFor(kind ValueKind) func(string) (Value, error) {
	switch kind {
	case KindBool:
		return d.parseBool
	case KindNumeric:
		return d.parseNumeric
	case KindLocaleString:
		return d.parseLocaleString
	case KindIconString:
		return d.parseIconString
	}
	return d.parseString
}
