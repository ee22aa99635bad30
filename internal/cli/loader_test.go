package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadQueries_File(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.yaml", thingsDoc)

	result, err := LoadQueries(path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 1, result.FileCount)
	assert.Equal(t, []string{"things", "names"}, result.Document.Names())
}

func TestLoadQueries_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", thingsDoc)
	writeFile(t, dir, "b.json", `{"queries": [{"name": "everything", "where": [{"triple": {"s": "?s", "p": "?p", "o": "?o"}}]}]}`)
	writeFile(t, dir, "README.md", "not a document")

	result, err := LoadQueries(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.FileCount)
	assert.Equal(t, []string{"things", "names", "everything"}, result.Document.Names())
}

func TestLoadQueries_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		code string
	}{
		{"missing", "/nonexistent/path", ErrCodeNotFound},
		{"empty dir", dir, ErrCodeNoFiles},
		{"bad yaml", writeFile(t, t.TempDir(), "bad.yaml", "queries: [\n"), ErrCodeLoadFailed},
		{"no queries", writeFile(t, t.TempDir(), "none.yaml", "queries: []\n"), ErrCodeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadQueries(tt.path)
			require.Error(t, err)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.code, loadErr.Code)
		})
	}
}

func TestFindDocumentFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "q.cue", "package q\n")
	writeFile(t, dir, "q.yml", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "sub/inner.yaml", "")

	files, err := FindDocumentFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"q.cue", "q.yml"}, files)
}

func TestMapFieldToErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeBuildFailed, MapFieldToErrorCode("cue"))
	assert.Equal(t, ErrCodeGeneric, MapFieldToErrorCode(""))
	assert.Equal(t, ErrCodeLoadFailed, MapFieldToErrorCode("queries"))
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Code: ErrCodeNotFound, Message: "path not found: x"}
	assert.Equal(t, "E005: path not found: x", err.Error())
}
