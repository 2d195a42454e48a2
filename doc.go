// Copyright 2026 The argh Authors.

/*
Package argh is a small, embeddable command-line option parser. A host
program declares the options it accepts, binds each one to a variable it
owns, and then feeds the registry input from up to three sources: an
options file, the process environment, and the command line. The library
writes whatever it sees into the bound variables and can render a
human-readable usage table; everything else, including validation, stays
with the host.

# Registering options

Create a registry with New and bind options to host variables:

	var (
		port    int
		hosts   []string
		verbose bool
	)

	a := argh.New()
	argh.AddOption(a, &port, 8080, "--port", "port to listen on")
	argh.AddMultiOption(a, &hosts, "localhost", "--hosts", "hosts to serve")
	a.AddFlag(&verbose, "--verbose", "more detail")

Option names are matched against input verbatim. The "--" prefix is a
convention, not a rule; any token can be an option name.

Registration immediately writes the default into the destination, so bound
variables are usable even if no input ever arrives. A multi-valued default
is a single string split on the registry delimiter (',' unless changed
with WithDelim), exactly as input values are split later.

Destinations may have any string, bool, integer, unsigned integer,
floating point or time.Duration type, or a named type with one of those
underlying kinds.

# Input sources and precedence

Each of Load, ParseEnv and Parse applies its entire input on top of the
current state, so later calls win for any option name they supply. The
conventional order is

	a.Load("program.opts") // ignore the error if the file is optional
	a.ParseEnv()
	a.Parse(os.Args[1:])

which yields the precedence defaults < file < environment < command line.

An options file is plain text with one argv-style token per line: an
option name on one line and its value on the next, or a flag on a line of
its own. There are no comments and no escaping. Load fails only when the
file cannot be read.

ParseEnv looks up each option name verbatim as an environment variable,
leading dashes included. Hosts that want shell-friendly variables should
register options under names like "MYPROG_PORT".

# Tokenization

Single-valued options of string type receive their value verbatim,
whitespace and all. Every other single value is converted like formatted
stream input: the first whitespace-delimited field is given to the
matching strconv function, and if the conversion fails the destination is
set to the type's zero value. Multi-valued options split the value on the
registry delimiter, with no trimming, and apply the same per-fragment
rules; an empty value produces an empty list.

When Parse matches an option name, the next token is always consumed as
the option's value if one exists. This holds for flags too: a flag
followed by a non-option token swallows that token, keeping it out of
RemainingArgs. Put flags last on the command line, or after another
option's name, if the following token matters.

# Errors

The only operation that can fail is Load. Unknown command-line tokens are
collected by RemainingArgs, a name with no following value leaves its
destination alone, and unparseable text zeroes the destination silently.
Hosts implement strict policy on top: MissingRequired and CheckRequired
report required options that no input supplied, and the host is free to
inspect the bound variables themselves.
*/
package argh
