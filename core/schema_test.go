package core

import (
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"

	clierr "github.com/dmulholl/arguably/errors"
)

func TestSchema_DuplicateLongName(t *testing.T) {
	schema := New().Flag("name", "n").Option("name", "")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	var ie clierr.InvalidSchemaError
	ok := stderrs.As(err, &ie)
	assert.True(t, ok)
	assert.StringContains(t, err.Error(), "duplicate name")
}

func TestSchema_DuplicateShortcut(t *testing.T) {
	schema := New().Flag("alpha", "a").Option("all", "a")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "duplicate shortcut")
}

func TestSchema_MultiCharacterShortcut(t *testing.T) {
	schema := New().Flag("alpha", "ab")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "single character")
}

func TestSchema_MalformedName(t *testing.T) {
	for _, name := range []string{"", "-bad", "has space", "has=eq"} {
		schema := New().Flag(name, "")
		_, err := schema.ParseArgs(nil)
		assert.NotNil(t, err)
	}
}

func TestSchema_VariadicMustBeLast(t *testing.T) {
	schema := New().Variadic("rest").Positional("late")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "after a variadic slot")
}

func TestSchema_SingleVariadic(t *testing.T) {
	schema := New().Variadic("rest").Variadic("more")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
}

func TestSchema_DuplicateSlotName(t *testing.T) {
	schema := New().Positional("name").OptionalPositional("name")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "duplicate positional name")
}

func TestSchema_CyclicCommandGraph(t *testing.T) {
	parent := New()
	child := New()
	parent.Command("child", child)
	child.Command("parent", parent)

	_, err := child.ParseArgs(nil)
	assert.NotNil(t, err)
	var ce clierr.CyclicSchemaError
	ok := stderrs.As(err, &ce)
	assert.True(t, ok)
	assert.Equal(t, ce.Command, "parent")
}

func TestSchema_SelfCommandIsCyclic(t *testing.T) {
	schema := New()
	schema.Command("self", schema)

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	var ce clierr.CyclicSchemaError
	ok := stderrs.As(err, &ce)
	assert.True(t, ok)
}

func TestSchema_ChildErrorPropagates(t *testing.T) {
	child := New().Flag("dup", "").Flag("dup", "")
	parent := New().Command("child", child)

	_, err := parent.ParseArgs(nil)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "duplicate name")
}

func TestSchema_ErrAccessor(t *testing.T) {
	good := New().Flag("flag", "f")
	assert.Nil(t, good.Err())

	bad := New().Flag("flag", "f").Flag("flag", "")
	assert.NotNil(t, bad.Err())
}

func TestSchema_FirstErrorWins(t *testing.T) {
	schema := New().Flag("dup", "").Flag("dup", "").Variadic("rest").Positional("late")

	_, err := schema.ParseArgs(nil)
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "duplicate name")
}

func TestSchema_SharedAcrossParses(t *testing.T) {
	schema := New().Flag("flag", "f").Option("opt", "o")

	first, err := schema.ParseArgs([]string{"--flag", "--opt", "a"})
	assert.Nil(t, err)
	second, err := schema.ParseArgs([]string{"--opt", "b"})
	assert.Nil(t, err)

	assert.True(t, first.Found("flag"))
	assert.True(t, !second.Found("flag"))
	assert.Equal(t, first.Value("opt"), "a")
	assert.Equal(t, second.Value("opt"), "b")
}
