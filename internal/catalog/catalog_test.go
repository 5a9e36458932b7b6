package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLookup tests catalog lookups by wire name.
func TestLookup(t *testing.T) {
	spec, ok := Lookup("AHKMouseMove")
	require.True(t, ok)
	require.Equal(t, "AHKMouseMove", spec.Function)
	require.Len(t, spec.Params, 4)

	_, ok = Lookup("NoSuchCommand")
	require.False(t, ok)
}

// TestValidate_Arity tests that argument count mismatches fail fast.
func TestValidate_Arity(t *testing.T) {
	spec, ok := Lookup("AHKMouseMove")
	require.True(t, ok)

	require.NoError(t, spec.Validate([]any{100, 200, 2, ""}))

	err := spec.Validate([]any{100, 200})
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 4 arguments")

	err = spec.Validate([]any{100, 200, 2, "", "extra"})
	require.Error(t, err)
}

// TestValidate_Types tests schema type checking of argument values.
func TestValidate_Types(t *testing.T) {
	spec, ok := Lookup("AHKMouseMove")
	require.True(t, ok)

	err := spec.Validate([]any{"one hundred", 200, 2, ""})
	require.Error(t, err)

	err = spec.Validate([]any{100, 200, 2, false})
	require.Error(t, err)
}

// TestFormat tests wire formatting of typed argument values.
func TestFormat(t *testing.T) {
	spec, ok := Lookup("AHKClick")
	require.True(t, ok)

	fields, err := spec.Format([]any{100, 200, "L", 1, "", "", ""})
	require.NoError(t, err)
	require.Equal(t, []string{"100", "200", "L", "1", "", "", ""}, fields)

	fields, err = spec.Format([]any{-5, 0, "R", 2, "D", "Rel", "Screen"})
	require.NoError(t, err)
	require.Equal(t, []string{"-5", "0", "R", "2", "D", "Rel", "Screen"}, fields)
}

// TestFormat_OptionalTrailing tests that empty trailing optional parameters
// are dropped from the wire, matching the daemon's calling convention for
// flags it appends only when set.
func TestFormat_OptionalTrailing(t *testing.T) {
	spec, ok := Lookup("AHKMouseMove")
	require.True(t, ok)

	fields, err := spec.Format([]any{100, 200, 2, ""})
	require.NoError(t, err)
	require.Equal(t, []string{"100", "200", "2"}, fields)

	fields, err = spec.Format([]any{100, 200, 2, "R"})
	require.NoError(t, err)
	require.Equal(t, []string{"100", "200", "2", "R"}, fields)

	spec, ok = Lookup("AHKKeyWait")
	require.True(t, ok)

	fields, err = spec.Format([]any{"Enter", ""})
	require.NoError(t, err)
	require.Equal(t, []string{"Enter"}, fields)

	fields, err = spec.Format([]any{"Enter", "DT5"})
	require.NoError(t, err)
	require.Equal(t, []string{"Enter", "DT5"}, fields)
}

// TestFormat_TypeMismatch tests that Format reports rather than coerces.
func TestFormat_TypeMismatch(t *testing.T) {
	spec, ok := Lookup("AHKSendInput")
	require.True(t, ok)

	_, err := spec.Format([]any{42})
	require.Error(t, err)
	require.Contains(t, err.Error(), "expects string")
}

// TestWindowCommands_CriteriaOrder tests that window commands declare their
// own arguments before the criteria block and end with the detect-hidden and
// match-mode fields, matching the daemon script's calling convention.
func TestWindowCommands_CriteriaOrder(t *testing.T) {
	spec, ok := Lookup("AHKWinSetTitle")
	require.True(t, ok)
	require.Len(t, spec.Params, 8)
	assert.Equal(t, "new_title", spec.Params[0].Name)
	assert.Equal(t, "title", spec.Params[1].Name)
	assert.Equal(t, "detect_hidden", spec.Params[5].Name)
	assert.Equal(t, "match_speed", spec.Params[7].Name)

	spec, ok = Lookup("AHKControlSend")
	require.True(t, ok)
	require.Len(t, spec.Params, 9)
	assert.Equal(t, "control", spec.Params[0].Name)
	assert.Equal(t, "keys", spec.Params[1].Name)
	assert.Equal(t, "title", spec.Params[2].Name)
}

// TestWinClose_SecondsThird tests the interleaved AHKWinClose layout: the
// wait argument rides between text and exclude_title.
func TestWinClose_SecondsThird(t *testing.T) {
	spec, ok := Lookup("AHKWinClose")
	require.True(t, ok)
	require.Len(t, spec.Params, 8)
	assert.Equal(t, "title", spec.Params[0].Name)
	assert.Equal(t, "text", spec.Params[1].Name)
	assert.Equal(t, "seconds_to_wait", spec.Params[2].Name)
	assert.Equal(t, "exclude_title", spec.Params[3].Name)
	assert.Equal(t, "match_speed", spec.Params[7].Name)
}

// TestOlderWindowCommands_QuartetOnly tests that the daemon's older window
// entry points take only the title/text quartet.
func TestOlderWindowCommands_QuartetOnly(t *testing.T) {
	for _, name := range []string{"WinActivate", "WinHide", "WinKill", "WinGetClass"} {
		spec, ok := Lookup(name)
		require.True(t, ok, name)
		require.Len(t, spec.Params, 4, name)
		assert.Equal(t, "title", spec.Params[0].Name, name)
		assert.Equal(t, "exclude_text", spec.Params[3].Name, name)
	}
}

// TestNames tests that Names is sorted and covers the registry.
func TestNames(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	require.IsIncreasing(t, names)
	assert.Contains(t, names, "AHKMouseGetPos")
	assert.Contains(t, names, "AHKWindowList")
	assert.Contains(t, names, "AHKWinExist")
	assert.Contains(t, names, "PixelSearch")
}

// TestRegistry_AllCompiled tests that every entry carries a resolved schema.
func TestRegistry_AllCompiled(t *testing.T) {
	for name, spec := range registry {
		require.NotNil(t, spec.resolved, "command %s has no resolved schema", name)
		require.Equal(t, name, spec.Function, "command %s registered under wrong key", name)
	}
}
