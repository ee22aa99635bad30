package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/spanqit/internal/compiler"
)

func executeValidate(t *testing.T, format, path string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateValidDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.yaml", thingsDoc)

	out, err := executeValidate(t, "text", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ All 2 quer(ies) valid")
}

func TestValidateValidDocumentJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.yaml", thingsDoc)

	out, err := executeValidate(t, "json", path)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, 2, resp.Data.Queries)
}

func TestValidateInvalidDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "q.yaml", brokenDoc)

	out, err := executeValidate(t, "text", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ Validation failed")
	assert.Contains(t, out, "bad_prefix")
	assert.Contains(t, out, compiler.ErrInvalidTerm)
}

func TestValidateCycleJSON(t *testing.T) {
	doc := `queries:
  - name: loop_a
    where: [{subquery: loop_b}]
  - name: loop_b
    where: [{subquery: loop_a}]
`
	path := writeFile(t, t.TempDir(), "q.yaml", doc)

	out, err := executeValidate(t, "json", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
		Error  *CLIError        `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	var cycles []string
	for _, e := range resp.Data.Errors {
		if e.Code == compiler.ErrReferenceCycle {
			cycles = append(cycles, e.Message)
		}
	}
	require.NotEmpty(t, cycles)
	assert.Contains(t, cycles[0], "reference cycle")
}

func TestValidateNonExistentDirectory(t *testing.T) {
	out, err := executeValidate(t, "text", "/nonexistent/directory/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E005") // ErrCodeNotFound
	assert.Contains(t, out, "not found")
}

func TestValidateEmptyDirectory(t *testing.T) {
	out, err := executeValidate(t, "text", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E003")
	assert.Contains(t, out, "no query documents found")
}
