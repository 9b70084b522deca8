package arguably

import "github.com/dmulholl/arguably/core"

// Schema describes one level of a command hierarchy: its flags, options,
// positional slots, and nested subcommands.
//
// Schemas are assembled with chainable registration methods and validated
// as they are built; the first declaration error is recorded and returned
// by Parse, so a broken schema can never produce a result.
//
// Usage:
//
//	schema := arguably.New().
//	    Flag("verbose", "V").
//	    Option("output", "o").
//	    Positional("source").
//	    Command("serve", arguably.New().
//	        Option("port", "p"))
//
// A schema is immutable once built and may be shared across any number of
// parse calls.
type Schema = core.Schema

// Result is the queryable output of a parse: flag presence and counts,
// option values, positional values, and the matched subcommand chain.
//
// Usage:
//
//	result, err := schema.ParseArgs(os.Args[1:])
//	if err != nil {
//	    // handle the typed parse error
//	}
//	if result.HelpRequested() {
//	    // print usage and stop before reading anything else
//	}
//	if result.Found("verbose") {
//	    // ...
//	}
type Result = core.Result

// Arity is the declared value cardinality of an option: exactly one value,
// or one or more.
type Arity = core.Arity

const (
	// ExactlyOne options hold a single value; a repeated occurrence
	// replaces the previous value.
	ExactlyOne = core.ExactlyOne

	// Multivalued options accumulate one or more values per occurrence.
	Multivalued = core.Multivalued
)
