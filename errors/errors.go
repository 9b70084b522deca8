package errors

import (
	"fmt"
	"strings"
)

// atPath renders the subcommand path at which an error occurred, for
// inclusion in user-facing messages. An empty path is the root command.
func atPath(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return fmt.Sprintf(" (in '%s')", strings.Join(path, " "))
}

// UnknownLongOptionError indicates a --name token whose name does not match
// any declared flag or option, even after prefix expansion.
// Suggestion, if present, is a close match the user may have intended.
type UnknownLongOptionError struct {
	Name       string   // name as written, without the leading dashes
	Token      string   // raw offending token
	Index      int      // token's index in the original argument vector
	Path       []string // subcommand names from the root to the failing node
	Suggestion string
}

func (e UnknownLongOptionError) Error() string {
	msg := fmt.Sprintf("'--%s' is not a recognised flag or option name%s", e.Name, atPath(e.Path))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", "--"+e.Suggestion)
	}
	return msg
}

// UnknownShortOptionError indicates a character in a short cluster that does
// not match any declared shortcut. ClusterPos is the character's position
// within the cluster, counting from zero after the leading dash.
type UnknownShortOptionError struct {
	Char       string
	Cluster    string // raw cluster token, e.g. "-abz"
	ClusterPos int
	Index      int
	Path       []string
}

func (e UnknownShortOptionError) Error() string {
	if len(e.Cluster) > 2 {
		return fmt.Sprintf("'%s' in %s is not a recognised flag or option name%s", e.Char, e.Cluster, atPath(e.Path))
	}
	return fmt.Sprintf("'%s' is not a recognised flag or option name%s", e.Cluster, atPath(e.Path))
}

// OptionMissingValueError indicates an option that did not receive a value.
type OptionMissingValueError struct {
	Name  string // canonical option name
	Token string // token as written, e.g. "--opt" or "-abc"
	Index int
	Path  []string
}

func (e OptionMissingValueError) Error() string {
	return fmt.Sprintf("missing value for %s%s", e.Token, atPath(e.Path))
}

// RequiredOptionMissingError indicates a required option that received no
// value anywhere on the command line.
type RequiredOptionMissingError struct {
	Name string
	Path []string
}

func (e RequiredOptionMissingError) Error() string {
	return fmt.Sprintf("missing required option: --%s%s", e.Name, atPath(e.Path))
}

// MissingPositionalError indicates a required positional slot left unfilled.
type MissingPositionalError struct {
	Name string
	Path []string
}

func (e MissingPositionalError) Error() string {
	return fmt.Sprintf("missing required argument: %s%s", e.Name, atPath(e.Path))
}

// UnexpectedArgumentError indicates a bare word that matched no subcommand
// and could not be bound to any positional slot.
// Suggestion, if present, is a subcommand name the user may have intended.
type UnexpectedArgumentError struct {
	Token      string
	Index      int
	Path       []string
	Suggestion string
}

func (e UnexpectedArgumentError) Error() string {
	msg := fmt.Sprintf("unexpected argument: %q%s", e.Token, atPath(e.Path))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// CyclicSchemaError indicates a subcommand registration that would make the
// schema graph cyclic.
type CyclicSchemaError struct {
	Command string
}

func (e CyclicSchemaError) Error() string {
	return fmt.Sprintf("cyclic schema: subcommand %q nests one of its own ancestors", e.Command)
}

// InvalidSchemaError indicates a malformed schema declaration, such as a
// duplicate name, a multi-character shortcut, or a misplaced variadic slot.
type InvalidSchemaError struct{ Msg string }

func (e InvalidSchemaError) Error() string { return "invalid schema: " + e.Msg }

// Helper constructors
func NewUnknownLongOption(name, token string, index int, path []string, suggestion string) error {
	return UnknownLongOptionError{Name: name, Token: token, Index: index, Path: path, Suggestion: suggestion}
}
func NewUnknownShortOption(char, cluster string, clusterPos, index int, path []string) error {
	return UnknownShortOptionError{Char: char, Cluster: cluster, ClusterPos: clusterPos, Index: index, Path: path}
}
func NewOptionMissingValue(name, token string, index int, path []string) error {
	return OptionMissingValueError{Name: name, Token: token, Index: index, Path: path}
}
func NewRequiredOptionMissing(name string, path []string) error {
	return RequiredOptionMissingError{Name: name, Path: path}
}
func NewMissingPositional(name string, path []string) error {
	return MissingPositionalError{Name: name, Path: path}
}
func NewUnexpectedArgument(token string, index int, path []string, suggestion string) error {
	return UnexpectedArgumentError{Token: token, Index: index, Path: path, Suggestion: suggestion}
}
func NewCyclicSchema(command string) error {
	return CyclicSchemaError{Command: command}
}
func NewInvalidSchema(format string, args ...any) error {
	return InvalidSchemaError{Msg: fmt.Sprintf(format, args...)}
}
