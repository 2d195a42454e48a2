// Copyright 2026 The argh Authors.

package argh

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type Int int

func TestParserForType(t *testing.T) {
	for _, test := range []struct {
		name    string
		tval    any
		input   string
		want    any
		wantErr bool
	}{
		{
			name:  "string",
			tval:  "",
			input: "foo bar",
			want:  "foo bar", // verbatim, whitespace preserved
		},
		{
			name:  "bool",
			tval:  false,
			input: "TRUE",
			want:  true,
		},
		{
			name:  "bool numeric",
			tval:  false,
			input: "1",
			want:  true,
		},
		{
			name:  "int",
			tval:  0,
			input: "-5",
			want:  -5,
		},
		{
			name:  "Int",
			tval:  Int(0),
			input: "1",
			want:  Int(1),
		},
		{
			name:  "uint16",
			tval:  uint16(0),
			input: "32767",
			want:  uint16(32767),
		},
		{
			name:  "float",
			tval:  0.0,
			input: "3.25",
			want:  3.25,
		},
		{
			name:  "leading whitespace",
			tval:  0,
			input: "  7 ",
			want:  7,
		},
		{
			name:  "stops at whitespace",
			tval:  0,
			input: "12 34",
			want:  12,
		},
		{
			name:  "duration",
			tval:  time.Duration(0),
			input: "2h45m",
			want:  2*time.Hour + 45*time.Minute,
		},
		{
			name:    "bad int",
			tval:    0,
			input:   "12x",
			wantErr: true,
		},
		{
			name:    "empty int",
			tval:    0,
			input:   "",
			wantErr: true,
		},
		{
			name:    "bad duration",
			tval:    time.Duration(0),
			input:   "fast",
			wantErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			parser := parserForType(reflect.TypeOf(test.tval))
			got, err := parser(test.input)
			if err != nil {
				if !test.wantErr {
					t.Fatalf("unwanted error: %v", err)
				}
				return
			}
			if test.wantErr {
				t.Fatalf("got %v, wanted error", got)
			}
			if !cmp.Equal(got, test.want) {
				t.Errorf("got %v (%T), want %v (%T)", got, got, test.want, test.want)
			}
		})
	}
}

func TestFirstField(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"a", "a"},
		{"  a  b", "a"},
		{"a\tb", "a"},
	} {
		if got := firstField(test.in); got != test.want {
			t.Errorf("firstField(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestSplitDelim(t *testing.T) {
	for _, test := range []struct {
		in    string
		delim rune
		want  []string
	}{
		{"", ',', nil},
		{"a", ',', []string{"a"}},
		{"a,b,c", ',', []string{"a", "b", "c"}},
		{"a,", ',', []string{"a"}},
		{"a,,", ',', []string{"a", ""}},
		{",", ',', []string{""}},
		{",a", ',', []string{"", "a"}},
		{"o n e|t w o", '|', []string{"o n e", "t w o"}},
	} {
		if got := splitDelim(test.in, test.delim); !cmp.Equal(got, test.want) {
			t.Errorf("splitDelim(%q, %q) = %#v, want %#v", test.in, test.delim, got, test.want)
		}
	}
}
