// Copyright 2026 The argh Authors.

package argh

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// The option registry and its queries.

// An Argh is an ordered registry of options. Register options with the Add
// functions, feed it input with Load, ParseEnv and Parse, then read results
// out of the bound destinations.
//
// An Argh is not safe for concurrent use.
type Argh struct {
	options []descriptor
	delim   rune
	rest    []string
}

// A Setting customizes a registry at construction time.
type Setting func(*Argh)

// WithDelim sets the delimiter used to split the values of multi-valued
// options. The default is ','. Each multi-valued option captures the
// delimiter when it is registered.
func WithDelim(r rune) Setting {
	return func(a *Argh) { a.delim = r }
}

// New returns an empty registry.
func New(opts ...Setting) *Argh {
	a := &Argh{delim: ','}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// descriptor is the interface shared by every option kind.
type descriptor interface {
	name() string
	defaultText() string
	message() string
	required() bool
	parsed() bool
	setParsed(bool)
	setValue(string)
}

// IsParsed reports whether any input source has supplied the named option.
func (a *Argh) IsParsed(name string) bool {
	for _, d := range a.options {
		if d.name() == name && d.parsed() {
			return true
		}
	}
	return false
}

// MissingRequired returns the names of required options that no input
// source has supplied, in registration order.
func (a *Argh) MissingRequired() []string {
	var names []string
	for _, d := range a.options {
		if d.required() && !d.parsed() {
			names = append(names, d.name())
		}
	}
	return names
}

// CheckRequired returns an error aggregating every missing required option,
// or nil if none are missing. Parsing itself never rejects input; hosts
// that want a strict policy call this after the last input source.
func (a *Argh) CheckRequired() error {
	var errs *multierror.Error
	for _, name := range a.MissingRequired() {
		errs = multierror.Append(errs, fmt.Errorf("missing required option %s", name))
	}
	return errs.ErrorOrNil()
}

// RemainingArgs returns the arguments from the most recent Parse call that
// were not consumed as an option name or value, in their original order.
// Load and ParseEnv do not affect it.
func (a *Argh) RemainingArgs() []string {
	return a.rest
}
