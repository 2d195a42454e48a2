// Copyright 2026 The argh Authors.

package argh

import (
	"bufio"
	"fmt"
	"os"
)

// Input adapters: argv, options file, and process environment. Each call
// fully applies its inputs on top of the current state, so precedence
// between sources is the host's call order.

// Parse applies command-line arguments to the registry. Tokens are matched
// verbatim against option names in registration order; the first matching
// option is marked parsed and receives the following token, if any, as its
// value. The following token is consumed even after a flag. Tokens that
// were consumed neither as a name nor as a value become RemainingArgs.
func (a *Argh) Parse(args []string) {
	a.rest = a.apply(args)
}

// apply runs a token stream against the registry and returns the tokens
// that were not consumed.
func (a *Argh) apply(args []string) []string {
	consumed := make([]bool, len(args))
	for i, arg := range args {
		for _, d := range a.options {
			if d.name() != arg {
				continue
			}
			d.setParsed(true)
			consumed[i] = true
			if i+1 < len(args) {
				// The setter is a no-op for flags, but the token is
				// consumed regardless.
				d.setValue(args[i+1])
				consumed[i+1] = true
			}
			break
		}
	}
	var rest []string
	for i, arg := range args {
		if !consumed[i] {
			rest = append(rest, arg)
		}
	}
	return rest
}

// Load reads an options file and applies its tokens to the registry. The
// file holds one argv-style token per line: an option name on one line and
// its value on the next, or a flag on a line of its own. Empty lines are
// empty tokens. Load fails only if the file cannot be opened or read, in
// which case no destination is touched. It never affects RemainingArgs.
func (a *Argh) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var args []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		args = append(args, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	a.apply(args)
	return nil
}

// ParseEnv looks up each registered option's name verbatim in the process
// environment, in registration order. Options whose variable is present
// are marked parsed and receive the variable's value, even if it is empty.
// Absent variables are ignored.
func (a *Argh) ParseEnv() {
	for _, d := range a.options {
		if v, ok := os.LookupEnv(d.name()); ok {
			d.setParsed(true)
			d.setValue(v)
		}
	}
}
