package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMapping(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    Doc
	}{
		{"object", `{"context":"gameplay_exploration"}`, Doc{"context": "gameplay_exploration"}},
		{"malformed", `{"context":`, Doc{}},
		{"array root", `[1,2]`, Doc{}},
		{"empty file", ``, Doc{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".json", tt.content)
			assert.Equal(t, tt.want, LoadMapping(path))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		assert.Equal(t, Doc{}, LoadMapping(filepath.Join(dir, "nope.json")))
	})
}

func TestReadMapping_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadMapping(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, ErrUnreadable))

	_, err = ReadMapping(writeFile(t, dir, "bad.json", `{`))
	assert.True(t, errors.Is(err, ErrUnreadable))

	_, err = ReadMapping(writeFile(t, dir, "list.json", `["a"]`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestLoadSequence(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, []any{}, LoadSequence(filepath.Join(dir, "missing.json")))
	assert.Equal(t, []any{}, LoadSequence(writeFile(t, dir, "obj.json", `{"a":1}`)))
	assert.Equal(t, []any{}, LoadSequence(writeFile(t, dir, "bad.json", `[1,`)))
	assert.Equal(t, []any{"a", 1.0}, LoadSequence(writeFile(t, dir, "ok.json", `["a",1]`)))
}

func TestSaveSequence_RoundTripAndCompact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	seq := []any{map[string]any{"reply": "<hi>", "selected": 1.0}}
	require.NoError(t, SaveSequence(path, seq))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"reply":"<hi>","selected":1}]`, string(data))
	assert.Equal(t, seq, LoadSequence(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestSaveSequence_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, SaveSequence(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveSequence_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "history.json")
	assert.Error(t, SaveSequence(path, []any{}))
}
