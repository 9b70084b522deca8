package core

// Result is the queryable output of a parse: one instance per schema node
// actually visited. It is populated during the single parse pass and
// immutable once returned.
type Result struct {
	flags   map[string]int
	options map[string][]string
	args    []string
	slots   map[string][]string
	cmdName string
	cmd     *Result
}

func newResult(s *Schema) *Result {
	r := &Result{
		flags:   map[string]int{},
		options: map[string][]string{},
		slots:   map[string][]string{},
	}
	// Declared-but-absent options map to an empty value list.
	for long := range s.options {
		r.options[long] = []string{}
	}
	return r
}

func (r *Result) addValue(opt *optionSpec, value string) {
	if opt.arity == ExactlyOne {
		r.options[opt.long] = []string{value}
		return
	}
	r.options[opt.long] = append(r.options[opt.long], value)
}

// Found reports whether the named flag or option was present.
func (r *Result) Found(name string) bool {
	return r.Count(name) > 0
}

// Count returns the number of times the named flag was found, or the
// number of values the named option received.
func (r *Result) Count(name string) int {
	if n, ok := r.flags[name]; ok {
		return n
	}
	return len(r.options[name])
}

// Value returns the named option's value, or its last value if it received
// several. Returns "" if the option was absent.
func (r *Result) Value(name string) string {
	values := r.options[name]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// Values returns the named option's values in the order they were found.
func (r *Result) Values(name string) []string {
	return append([]string(nil), r.options[name]...)
}

// Args returns the positional values bound at this level, in binding order.
func (r *Result) Args() []string {
	return append([]string(nil), r.args...)
}

// NumArgs returns the number of positional values bound at this level.
func (r *Result) NumArgs() int {
	return len(r.args)
}

// Pos returns the value bound to the named positional slot, or "" if the
// slot is unfilled. For a variadic slot it returns the first captured value.
func (r *Result) Pos(slot string) string {
	values := r.slots[slot]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// PosAll returns every value bound to the named positional slot.
func (r *Result) PosAll(slot string) []string {
	return append([]string(nil), r.slots[slot]...)
}

// HasCmd reports whether a subcommand was matched at this level.
func (r *Result) HasCmd() bool {
	return r.cmdName != ""
}

// CmdName returns the matched subcommand's name, or "".
func (r *Result) CmdName() string {
	return r.cmdName
}

// Cmd returns the matched subcommand's result, or nil.
func (r *Result) Cmd() *Result {
	return r.cmd
}

// HelpRequested reports whether the automatic help flag was set at this
// level or anywhere below it.
func (r *Result) HelpRequested() bool {
	if r.flags["help"] > 0 {
		return true
	}
	return r.cmd != nil && r.cmd.HelpRequested()
}

// VersionRequested reports whether the automatic version flag was set at
// this level or anywhere below it.
func (r *Result) VersionRequested() bool {
	if r.flags["version"] > 0 {
		return true
	}
	return r.cmd != nil && r.cmd.VersionRequested()
}
