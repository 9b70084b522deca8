// Package arguably is a minimalist library for parsing command line
// arguments.
//
// It supports long-form boolean flags with single-character shortcuts
// (--flag, -f), long-form options with single or multiple values
// (--option <arg>, -o <arg>, --option=arg), condensed short-form clusters
// (-abc <arg>), named positional slots, automatic --help and --version
// flags, and git-style command interfaces with arbitrarily nested
// subcommands.
//
// The parser itself never prints or exits: it returns a queryable Result
// tree, or a typed error carrying the offending token, its index in the
// argument vector, and the subcommand path at which parsing failed.
package arguably

//go:generate gomarkdoc ./ -o docs/arguably.md
