package elmgen_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takumakei/elm-translations-go/elmgen"
)

func TestIsValidModuleName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Translations", true},
		{"T", true},
		{"I18n", true},
		{"T2", true},
		{"translations", false},
		{"", false},
		{"Bad-Name", false},
		{"Bad_Name", false},
		{"I18n.Translations", false},
		{"2T", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, elmgen.IsValidModuleName(tt.name))
		})
	}
}

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"hello", true},
		{"helloWorld", true},
		{"h1", true},
		{"Hello", false},
		{"hello-world", false},
		{"hello_world", false},
		{"1st", false},
		{"", false},
		{"héllo", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, elmgen.IsValidKey(tt.key))
		})
	}
}

func TestValidateModule(t *testing.T) {
	require.NoError(t, elmgen.ValidateModule("Translations"))
	require.NoError(t, elmgen.ValidateModule("I18n.Translations"))

	for _, bad := range []string{"translations", "I18n.translations", "I18n.", ".T", ""} {
		err := elmgen.ValidateModule(bad)
		require.Error(t, err, bad)

		var nerr *elmgen.NamingError
		require.True(t, errors.As(err, &nerr), bad)
		assert.Equal(t, bad, nerr.Name)
		assert.Equal(t, elmgen.UpperCamel, nerr.Class)
		assert.NotEmpty(t, errors.GetAllHints(err))
	}
}

func TestRootNameAndModulePath(t *testing.T) {
	assert.Equal(t, "Translations", elmgen.RootName("Translations"))
	assert.Equal(t, "Translations", elmgen.RootName("I18n.Translations"))
	assert.Equal(t, "Translations.elm", elmgen.ModulePath("Translations"))
	assert.Equal(t, "I18n/Text/Translations.elm", elmgen.ModulePath("I18n.Text.Translations"))
}

func TestNamingErrorMessage(t *testing.T) {
	err := elmgen.ValidateModule("translations")
	assert.EqualError(t, err, "Module name invalid: translations (upper camel case required)")

	_, err = elmgen.EmitType("T", elmgen.NewGroup(elmgen.Leaf("Bad-Key", "x")), "")
	assert.EqualError(t, err, "Key invalid: Bad-Key (lower camel case required)")
}

func TestIsReserved(t *testing.T) {
	for _, w := range []string{"type", "alias", "let", "in", "if", "then", "else", "case", "of", "module", "import", "exposing", "as", "port", "where"} {
		assert.True(t, elmgen.IsReserved(w), w)
		assert.True(t, elmgen.IsValidKey(w), w)
	}
	for _, w := range []string{"types", "inbox", "letter", "title"} {
		assert.False(t, elmgen.IsReserved(w), w)
	}
}

func TestValidateModuleShadowing(t *testing.T) {
	for _, module := range []string{"Error", "Value", "Decoder", "String", "Result", "I18n.Value"} {
		err := elmgen.ValidateModule(module)
		var nerr *elmgen.NamingError
		require.True(t, errors.As(err, &nerr), module)
		assert.Equal(t, module, nerr.Name)
		assert.Equal(t, elmgen.NonImport, nerr.Class)
		assert.NotEmpty(t, errors.GetAllHints(err))
	}
	require.NoError(t, elmgen.ValidateModule("Value.Translations"))
}
