package core

import (
	"strings"
	"unicode/utf8"

	"github.com/dmulholl/arguably/errors"
	"github.com/dmulholl/arguably/internal/common"
)

// Arity is the declared value cardinality of an option.
type Arity int

const (
	// ExactlyOne options hold a single value; a repeated occurrence
	// replaces the previous value.
	ExactlyOne Arity = iota

	// Multivalued options accumulate one or more values per occurrence.
	Multivalued
)

type flagSpec struct {
	long    string
	short   string
	builtin bool
}

type optionSpec struct {
	long     string
	short    string
	arity    Arity
	required bool
	greedy   bool
}

type slotSpec struct {
	name     string
	variadic bool
	required bool
}

// Schema describes one level of a command hierarchy: its flags, options,
// positional slots, and nested subcommands. Schemas are built with the
// chainable registration methods and are immutable during parsing, so a
// single instance can serve any number of parse calls.
//
// Declaration errors (duplicate names, bad shortcuts, misplaced variadic
// slots, cyclic subcommand graphs) are detected at registration time. The
// first such error is recorded and returned by Parse and ParseArgs, so a
// broken schema can never produce a parse result.
type Schema struct {
	flags    map[string]*flagSpec
	options  map[string]*optionSpec
	shorts   map[string]string // shortcut -> canonical long name
	slots    []slotSpec
	commands map[string]*Schema
	callback func(string, *Result)
	abbrev   bool
	err      error
}

// New creates an empty schema node. Automatic "help" and "version" flags
// are injected with "h" and "v" shortcuts; registering a name or shortcut
// that collides with them overrides the automatic declaration.
func New() *Schema {
	s := &Schema{
		flags:    map[string]*flagSpec{},
		options:  map[string]*optionSpec{},
		shorts:   map[string]string{},
		commands: map[string]*Schema{},
	}
	s.flags["help"] = &flagSpec{long: "help", short: "h", builtin: true}
	s.shorts["h"] = "help"
	s.flags["version"] = &flagSpec{long: "version", short: "v", builtin: true}
	s.shorts["v"] = "version"
	return s
}

// Flag registers a boolean flag with a canonical long name and an optional
// single-character shortcut (pass "" for none).
func (s *Schema) Flag(long, short string) *Schema {
	if !s.claimLong(long) || !s.claimShort(short, long) {
		return s
	}
	s.flags[long] = &flagSpec{long: long, short: short}
	return s
}

// Option registers an option that holds exactly one value.
func (s *Schema) Option(long, short string) *Schema {
	return s.addOption(long, short, ExactlyOne, false, false)
}

// RequiredOption registers an exactly-one option that must receive a value.
func (s *Schema) RequiredOption(long, short string) *Schema {
	return s.addOption(long, short, ExactlyOne, true, false)
}

// MultiOption registers a multivalued option. Value consumption is lazy:
// it stops at the first token that looks like a flag, a terminator, or a
// declared subcommand name.
func (s *Schema) MultiOption(long, short string) *Schema {
	return s.addOption(long, short, Multivalued, false, false)
}

// GreedyOption registers a multivalued option whose value consumption stops
// only at flag-like tokens, the terminator, or the end of the stream. Tokens
// equal to subcommand names are swallowed as values.
func (s *Schema) GreedyOption(long, short string) *Schema {
	return s.addOption(long, short, Multivalued, false, true)
}

func (s *Schema) addOption(long, short string, arity Arity, required, greedy bool) *Schema {
	if !s.claimLong(long) || !s.claimShort(short, long) {
		return s
	}
	s.options[long] = &optionSpec{long: long, short: short, arity: arity, required: required, greedy: greedy}
	return s
}

// Positional registers a required single positional slot.
func (s *Schema) Positional(name string) *Schema {
	return s.addSlot(name, false, true)
}

// OptionalPositional registers a single positional slot that may be left
// unfilled.
func (s *Schema) OptionalPositional(name string) *Schema {
	return s.addSlot(name, false, false)
}

// Variadic registers a variadic positional slot capturing every remaining
// positional value. A schema may have at most one, and it must be last.
func (s *Schema) Variadic(name string) *Schema {
	return s.addSlot(name, true, false)
}

func (s *Schema) addSlot(name string, variadic, required bool) *Schema {
	if !s.checkName(name) {
		return s
	}
	for _, slot := range s.slots {
		if slot.name == name {
			s.fail(errors.NewInvalidSchema("duplicate positional name %q", name))
			return s
		}
		if slot.variadic {
			s.fail(errors.NewInvalidSchema("positional %q declared after a variadic slot", name))
			return s
		}
	}
	s.slots = append(s.slots, slotSpec{name: name, variadic: variadic, required: required})
	return s
}

// Command registers a nested subcommand with its own schema node. A child
// from which the receiver is reachable is rejected as a cyclic schema.
// A declaration error recorded on the child propagates to the parent.
func (s *Schema) Command(name string, child *Schema) *Schema {
	if !s.claimLong(name) {
		return s
	}
	if child == nil {
		s.fail(errors.NewInvalidSchema("subcommand %q has a nil schema", name))
		return s
	}
	if child.reaches(s) {
		s.fail(errors.NewCyclicSchema(name))
		return s
	}
	if child.err != nil {
		s.fail(child.err)
	}
	s.commands[name] = child
	return s
}

// OnMatch registers a callback invoked with the matched name and this
// node's result after it has been parsed as a subcommand.
func (s *Schema) OnMatch(fn func(name string, result *Result)) *Schema {
	s.callback = fn
	return s
}

// AllowAbbrev enables unambiguous-prefix matching of this node's long flag
// and option names. Subcommand names are never abbreviated.
func (s *Schema) AllowAbbrev() *Schema {
	s.abbrev = true
	return s
}

// Err returns the first declaration error recorded on this schema, if any.
func (s *Schema) Err() error {
	return s.err
}

func (s *Schema) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// reaches reports whether target is this node or any of its descendants.
func (s *Schema) reaches(target *Schema) bool {
	if s == target {
		return true
	}
	for _, child := range s.commands {
		if child.reaches(target) {
			return true
		}
	}
	return false
}

func (s *Schema) checkName(name string) bool {
	if name == "" {
		s.fail(errors.NewInvalidSchema("empty name"))
		return false
	}
	if strings.HasPrefix(name, "-") || strings.ContainsAny(name, "= \t") {
		s.fail(errors.NewInvalidSchema("malformed name %q", name))
		return false
	}
	return true
}

// claimLong validates a long or subcommand name and reserves it within the
// node's namespace. Redeclaring an automatic flag replaces it silently.
func (s *Schema) claimLong(name string) bool {
	if !s.checkName(name) {
		return false
	}
	if f, ok := s.flags[name]; ok {
		if !f.builtin {
			s.fail(errors.NewInvalidSchema("duplicate name %q", name))
			return false
		}
		delete(s.shorts, f.short)
		delete(s.flags, name)
		return true
	}
	if _, ok := s.options[name]; ok {
		s.fail(errors.NewInvalidSchema("duplicate name %q", name))
		return false
	}
	if _, ok := s.commands[name]; ok {
		s.fail(errors.NewInvalidSchema("duplicate name %q", name))
		return false
	}
	return true
}

// claimShort validates a shortcut and reserves it for the named long form.
// A shortcut held by an automatic flag may be stolen.
func (s *Schema) claimShort(short, long string) bool {
	if short == "" {
		return true
	}
	if utf8.RuneCountInString(short) != 1 || strings.ContainsAny(short, "-=") {
		s.fail(errors.NewInvalidSchema("shortcut %q for %q must be a single character", short, long))
		return false
	}
	if owner, ok := s.shorts[short]; ok {
		if f, isFlag := s.flags[owner]; isFlag && f.builtin {
			f.short = ""
		} else {
			s.fail(errors.NewInvalidSchema("duplicate shortcut %q", short))
			return false
		}
	}
	s.shorts[short] = long
	return true
}

// resolveLong maps a long name as written to its canonical form, expanding
// unambiguous prefixes when abbreviation is enabled.
func (s *Schema) resolveLong(name string) (string, bool) {
	if _, ok := s.flags[name]; ok {
		return name, true
	}
	if _, ok := s.options[name]; ok {
		return name, true
	}
	if !s.abbrev {
		return "", false
	}
	match := ""
	n := 0
	for _, long := range s.longNames() {
		if strings.HasPrefix(long, name) {
			match = long
			n++
		}
	}
	if n == 1 {
		return match, true
	}
	return "", false
}

// resolveShort maps a shortcut character to its canonical long name.
func (s *Schema) resolveShort(char string) (string, bool) {
	long, ok := s.shorts[char]
	return long, ok
}

// longNames returns the declared flag and option long names in sorted order.
func (s *Schema) longNames() []string {
	names := common.SortedKeys(s.flags)
	names = append(names, common.SortedKeys(s.options)...)
	return names
}

// commandNames returns the declared subcommand names in sorted order.
func (s *Schema) commandNames() []string {
	return common.SortedKeys(s.commands)
}
