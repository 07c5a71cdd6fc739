package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_CleanBank(t *testing.T) {
	issues, err := Lint(filepath.Join("testdata", "preguntas.json"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestLint_YAMLBank(t *testing.T) {
	issues, err := Lint(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestLint_FlagsWhatLoadTolerates(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty option text", `[{"pregunta":"q","opciones":{"A":"","B":"b","C":"c"},"correcta":"A"}]`},
		{"extra option", `[{"pregunta":"q","opciones":{"A":"a","B":"b","C":"c","D":"d"},"correcta":"A"}]`},
		{"unknown field", `[{"pregunta":"q","opciones":{"A":"a","B":"b","C":"c"},"correcta":"A","tema":"x"}]`},
		{"empty question", `[{"pregunta":"","opciones":{"A":"a","B":"b","C":"c"},"correcta":"A"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Every case is still loadable.
			_, err := Parse("bank.json", []byte(tt.content))
			require.NoError(t, err)

			issues, err := LintBytes("bank.json", []byte(tt.content))
			require.NoError(t, err)
			assert.NotEmpty(t, issues)
		})
	}
}

func TestLint_UndecodableContent(t *testing.T) {
	_, err := LintBytes("bank.json", []byte(`{`))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestCheck_LoadsAndLintsSameContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	content := `[{"pregunta":"q","opciones":{"A":"a","B":"b","C":"c","D":"d"},"correcta":"A"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b, issues, err := Check(path)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Len())
	assert.NotEmpty(t, issues)
}

func TestCheck_LoadErrorSkipsLint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pregunta":"q"}`), 0o644))

	b, issues, err := Check(path)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Nil(t, b)
	assert.Nil(t, issues)

	_, _, err = Check(filepath.Join(t.TempDir(), "missing.json"))
	require.True(t, errors.As(err, &le))
	assert.Equal(t, reasonNotFound, le.Reason)
}

func TestIssuesFrom(t *testing.T) {
	rendered := "jsonschema validation failed with 'schema://quizbank/bank.json#'\n" +
		"- at '/0/opciones': additional properties 'D' not allowed\n" +
		"  - at '/1/pregunta': minLength: got 0, want 1"
	issues := issuesFrom(rendered)
	require.Len(t, issues, 2)
	assert.Equal(t, "/0/opciones", issues[0].Location)
	assert.Equal(t, "minLength: got 0, want 1", issues[1].Message)
	assert.Equal(t, "/1/pregunta: minLength: got 0, want 1", issues[1].String())

	fallback := issuesFrom("something odd")
	require.Len(t, fallback, 1)
	assert.Equal(t, "something odd", fallback[0].String())
}
