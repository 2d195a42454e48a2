// Copyright 2026 The argh Authors.

package argh

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Lexical conversions from input text to option destinations.

// Value is the set of types an option destination may have. time.Duration
// satisfies it and is parsed with time.ParseDuration; other named types are
// converted through their underlying kind.
type Value interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// parseFunc is the type of functions that convert input text into values.
// The dynamic type of the returned value is the option's destination type.
type parseFunc func(string) (any, error)

var durationType = reflect.TypeOf(time.Duration(0))

// parserForType returns the lexical conversion for destination type t.
// String destinations take the text verbatim. All other destinations mimic
// formatted stream extraction: the conversion applies to the first
// whitespace-delimited field of the text and fails on anything the strconv
// functions reject.
func parserForType(t reflect.Type) parseFunc {
	convert := func(v any) any {
		return reflect.ValueOf(v).Convert(t).Interface()
	}

	if t == durationType {
		return func(s string) (any, error) {
			d, err := time.ParseDuration(firstField(s))
			if err != nil {
				return nil, err
			}
			return convert(d), nil
		}
	}

	switch t.Kind() {
	case reflect.String:
		return func(s string) (any, error) {
			return convert(s), nil
		}
	case reflect.Bool:
		return func(s string) (any, error) {
			b, err := strconv.ParseBool(firstField(s))
			if err != nil {
				return nil, err
			}
			return convert(b), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(s string) (any, error) {
			i, err := strconv.ParseInt(firstField(s), 10, 64)
			if err != nil {
				return nil, err
			}
			return convert(i), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(s string) (any, error) {
			u, err := strconv.ParseUint(firstField(s), 10, 64)
			if err != nil {
				return nil, err
			}
			return convert(u), nil
		}
	default: // Float32, Float64; Value admits no other kinds.
		return func(s string) (any, error) {
			f, err := strconv.ParseFloat(firstField(s), 64)
			if err != nil {
				return nil, err
			}
			return convert(f), nil
		}
	}
}

// firstField returns the first whitespace-delimited field of s, or "" if s
// is empty or all whitespace.
func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// splitDelim splits s on delim with line-reading semantics: an empty
// string yields no fragments, and a single trailing delimiter does not
// yield a trailing empty fragment. Fragments are not trimmed.
func splitDelim(s string, delim rune) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, string(delim))
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
