package core

import (
	"os"
	"strings"

	"github.com/dmulholl/arguably/errors"
	"github.com/dmulholl/arguably/internal/common"
)

// stream is the advancing cursor over the raw argument vector. It is
// shared across the whole recursion, so token indexes reported in errors
// always refer to the original vector. The cursor never moves backward.
type stream struct {
	args  []string
	index int
}

func (st *stream) hasNext() bool { return st.index < len(st.args) }
func (st *stream) peek() string  { return st.args[st.index] }

func (st *stream) next() string {
	st.index++
	return st.args[st.index-1]
}

// Parse parses the process's command line arguments, excluding the program
// name. It is a pure function of (schema, arguments): no printing, no
// exiting. The caller inspects the result for the automatic help and
// version flags before reading anything else.
func (s *Schema) Parse() (*Result, error) {
	return s.ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument vector against the schema.
func (s *Schema) ParseArgs(args []string) (*Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.parseStream(&stream{args: args}, nil, false)
}

// parseStream consumes tokens for one schema node until the stream is
// exhausted or a subcommand is dispatched. suppress carries an ancestor's
// help/version state so validation is skipped everywhere below it.
func (s *Schema) parseStream(st *stream, path []string, suppress bool) (*Result, error) {
	res := newResult(s)
	literal := false
	dispatched := false

	for st.hasNext() && !dispatched {
		index := st.index
		raw := st.next()
		tok := classify(raw)
		if literal {
			tok = token{kind: tokenBare, text: raw}
		}

		switch tok.kind {
		case tokenTerminator:
			literal = true

		case tokenLong:
			if err := s.applyLong(tok, index, st, res, path); err != nil {
				return nil, err
			}

		case tokenCluster:
			if err := s.applyCluster(tok, index, st, res, path); err != nil {
				return nil, err
			}

		default:
			done, err := s.applyBare(tok, index, st, res, path, literal, suppress)
			if err != nil {
				return nil, err
			}
			dispatched = done
		}
	}

	if suppress || res.HelpRequested() || res.VersionRequested() {
		return res, nil
	}
	if err := s.validate(res, path); err != nil {
		return nil, err
	}
	return res, nil
}

// applyLong handles a --name or --name=value token.
func (s *Schema) applyLong(tok token, index int, st *stream, res *Result, path []string) error {
	long, ok := s.resolveLong(tok.name)
	if !ok {
		suggestion := common.NameSuggestion(tok.name, s.longNames())
		return errors.NewUnknownLongOption(tok.name, tok.text, index, copyPath(path), suggestion)
	}

	if _, isFlag := s.flags[long]; isFlag {
		if tok.hasEq {
			// A flag takes no value, so the equals form resolves
			// against options only.
			return errors.NewUnknownLongOption(tok.name, tok.text, index, copyPath(path), "")
		}
		res.flags[long]++
		return nil
	}

	opt := s.options[long]
	if tok.hasEq {
		if tok.value == "" {
			return errors.NewOptionMissingValue(long, tok.text, index, copyPath(path))
		}
		// The attached value is the whole occurrence; no lookahead
		// consumption follows it.
		res.addValue(opt, tok.value)
		return nil
	}
	return s.consumeValues(opt, tok.text, index, st, res, path)
}

// applyCluster expands a short cluster character by character. Flags may
// appear freely; the first option character ends decoding, taking the
// cluster remainder (or an =-attached value) as its value, or consuming
// subsequent tokens if nothing remains.
func (s *Schema) applyCluster(tok token, index int, st *stream, res *Result, path []string) error {
	chars := []rune(tok.name)
	for i, ch := range chars {
		long, ok := s.resolveShort(string(ch))
		if !ok {
			return errors.NewUnknownShortOption(string(ch), tok.text, i, index, copyPath(path))
		}

		if _, isFlag := s.flags[long]; isFlag {
			res.flags[long]++
			continue
		}

		opt := s.options[long]
		rest := string(chars[i+1:])
		if attached, isEq := strings.CutPrefix(rest, "="); isEq {
			rest = attached
			if rest == "" {
				return errors.NewOptionMissingValue(long, tok.text, index, copyPath(path))
			}
		}
		if rest != "" {
			res.addValue(opt, rest)
			return nil
		}
		return s.consumeValues(opt, tok.text, index, st, res, path)
	}
	return nil
}

// consumeValues binds one or more subsequent tokens to the option. The
// first value is mandatory; a multivalued option keeps consuming until the
// lookahead rule stops it.
func (s *Schema) consumeValues(opt *optionSpec, display string, index int, st *stream, res *Result, path []string) error {
	if !st.hasNext() || flaglike(st.peek()) {
		return errors.NewOptionMissingValue(opt.long, display, index, copyPath(path))
	}
	res.addValue(opt, st.next())
	if opt.arity != Multivalued {
		return nil
	}
	for st.hasNext() && !s.stopsValues(st.peek(), opt.greedy) {
		res.addValue(opt, st.next())
	}
	return nil
}

// stopsValues is the lookahead rule ending multivalued consumption.
// Lazy options also stop at declared subcommand names.
func (s *Schema) stopsValues(raw string, greedy bool) bool {
	if flaglike(raw) {
		return true
	}
	if greedy {
		return false
	}
	_, isCmd := s.commands[raw]
	return isCmd
}

// applyBare handles a bare word: subcommand dispatch wins over positional
// binding whenever both are possible. Returns true once a subcommand has
// been dispatched, ending this node's parse.
func (s *Schema) applyBare(tok token, index int, st *stream, res *Result, path []string, literal, suppress bool) (bool, error) {
	if !literal {
		if child, ok := s.commands[tok.text]; ok {
			childPath := append(copyPath(path), tok.text)
			sub, err := child.parseStream(st, childPath, suppress || res.HelpRequested() || res.VersionRequested())
			if err != nil {
				return false, err
			}
			res.cmdName = tok.text
			res.cmd = sub
			if child.callback != nil {
				child.callback(tok.text, sub)
			}
			return true, nil
		}
	}

	if s.bindPositional(res, tok.text) {
		return false, nil
	}
	suggestion := ""
	if !literal && len(s.commands) > 0 {
		suggestion = common.NameSuggestion(tok.text, s.commandNames())
	}
	return false, errors.NewUnexpectedArgument(tok.text, index, copyPath(path), suggestion)
}

// bindPositional binds the value to the next unfilled slot in declaration
// order; a variadic slot captures everything left over.
func (s *Schema) bindPositional(res *Result, value string) bool {
	for _, slot := range s.slots {
		if !slot.variadic && len(res.slots[slot.name]) > 0 {
			continue
		}
		res.slots[slot.name] = append(res.slots[slot.name], value)
		res.args = append(res.args, value)
		return true
	}
	return false
}

// validate runs the post-loop checks: required options must have a value
// and required positional slots must be filled.
func (s *Schema) validate(res *Result, path []string) error {
	for _, long := range common.SortedKeys(s.options) {
		opt := s.options[long]
		if opt.required && len(res.options[long]) == 0 {
			return errors.NewRequiredOptionMissing(long, copyPath(path))
		}
	}
	for _, slot := range s.slots {
		if slot.required && len(res.slots[slot.name]) == 0 {
			return errors.NewMissingPositional(slot.name, copyPath(path))
		}
	}
	return nil
}

func copyPath(path []string) []string {
	return append([]string(nil), path...)
}
