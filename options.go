// Copyright 2026 The argh Authors.

package argh

import (
	"fmt"
	"reflect"
)

// Code to register options and seed their destinations.

// meta holds the fields common to every option kind.
type meta struct {
	optName string
	msg     string
	req     bool
	seen    bool
}

func (m *meta) name() string     { return m.optName }
func (m *meta) message() string  { return m.msg }
func (m *meta) required() bool   { return m.req }
func (m *meta) parsed() bool     { return m.seen }
func (m *meta) setParsed(p bool) { m.seen = p }

// scalarOption is a single-valued option. The parse func carries the kind
// distinction: string targets take input verbatim, everything else goes
// through the lexical conversion in parsers.go.
type scalarOption[T Value] struct {
	meta
	dest    *T
	defText string
	parse   parseFunc
}

func (o *scalarOption[T]) defaultText() string { return o.defText }

func (o *scalarOption[T]) setValue(s string) {
	v, err := o.parse(s)
	if err != nil {
		var zero T
		*o.dest = zero
		return
	}
	*o.dest = v.(T)
}

// multiOption is a delimiter-separated list option.
type multiOption[T Value] struct {
	meta
	dest     *[]T
	defaults string
	delim    rune
	parse    parseFunc
}

func (o *multiOption[T]) defaultText() string { return `"` + o.defaults + `"` }

// setValue clears the destination and refills it from the split fragments.
// A fragment that fails conversion contributes the zero value.
func (o *multiOption[T]) setValue(s string) {
	*o.dest = (*o.dest)[:0]
	for _, frag := range splitDelim(s, o.delim) {
		v, err := o.parse(frag)
		if err != nil {
			var zero T
			*o.dest = append(*o.dest, zero)
			continue
		}
		*o.dest = append(*o.dest, v.(T))
	}
}

// flagOption is a valueless option. Its only state is the parsed bit,
// mirrored into the bound bool if there is one.
type flagOption struct {
	meta
	dest *bool
}

func (o *flagOption) defaultText() string { return "" }
func (o *flagOption) setValue(string)     {}

func (o *flagOption) setParsed(p bool) {
	o.seen = p
	if o.dest != nil {
		*o.dest = p
	}
}

// AddOption registers a single-valued option bound to dest and writes def
// into dest. String destinations receive input verbatim, whitespace
// included; all other destinations go through the lexical conversion
// described in the package documentation.
func AddOption[T Value](a *Argh, dest *T, def T, name, msg string) {
	addOption(a, dest, def, name, msg, false)
}

// AddRequiredOption is AddOption for options that MissingRequired and
// CheckRequired report when no input supplies them. Required is
// informational only; parsing never fails.
func AddRequiredOption[T Value](a *Argh, dest *T, def T, name, msg string) {
	addOption(a, dest, def, name, msg, true)
}

func addOption[T Value](a *Argh, dest *T, def T, name, msg string, req bool) {
	*dest = def
	a.options = append(a.options, &scalarOption[T]{
		meta:    meta{optName: name, msg: msg, req: req},
		dest:    dest,
		defText: formatDefault(def),
		parse:   parserForType(reflect.TypeOf(def)),
	})
}

// AddMultiOption registers a multi-valued option bound to dest. The
// defaults string is split on the registry delimiter to seed dest, exactly
// as later input values will be.
func AddMultiOption[T Value](a *Argh, dest *[]T, defaults, name, msg string) {
	addMultiOption(a, dest, defaults, name, msg, false)
}

// AddRequiredMultiOption is AddMultiOption for options that
// MissingRequired and CheckRequired report when no input supplies them.
func AddRequiredMultiOption[T Value](a *Argh, dest *[]T, defaults, name, msg string) {
	addMultiOption(a, dest, defaults, name, msg, true)
}

func addMultiOption[T Value](a *Argh, dest *[]T, defaults, name, msg string, req bool) {
	var elem T
	o := &multiOption[T]{
		meta:     meta{optName: name, msg: msg, req: req},
		dest:     dest,
		defaults: defaults,
		delim:    a.delim,
		parse:    parserForType(reflect.TypeOf(elem)),
	}
	o.setValue(defaults)
	a.options = append(a.options, o)
}

// AddFlag registers a valueless option. Any input source that mentions
// name sets the parsed state, which is mirrored into dest if dest is
// non-nil. dest is set to false at registration.
func (a *Argh) AddFlag(dest *bool, name, msg string) {
	if dest != nil {
		*dest = false
	}
	a.options = append(a.options, &flagOption{
		meta: meta{optName: name, msg: msg},
		dest: dest,
	})
}

// formatDefault renders a default value for the usage table. String
// defaults are wrapped in double quotes to make their boundaries visible.
func formatDefault[T Value](def T) string {
	if reflect.TypeOf(def).Kind() == reflect.String {
		return `"` + reflect.ValueOf(def).String() + `"`
	}
	return fmt.Sprint(def)
}
