package cli

import (
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue/token"

	"github.com/roach88/spanqit/internal/compiler"
	"github.com/roach88/spanqit/internal/queryir"
)

// LoadResult contains a loaded query document.
type LoadResult struct {
	Document  *queryir.Document
	Path      string
	FileCount int // Number of document files read
}

// LoadError represents an error that occurred during document loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadQueries loads a query document file, or every document directly
// inside a directory.
func LoadQueries(path string) (*LoadResult, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("path not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing path: %v", err)}
	}

	fileCount := 1
	if info.IsDir() {
		files, err := FindDocumentFiles(path)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
		}
		if len(files) == 0 {
			return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no query documents found in %s", path)}
		}
		fileCount = len(files)
	}

	doc, err := compiler.Load(path)
	if err != nil {
		return nil, convertCompileError(err)
	}
	if len(doc.Queries) == 0 {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("no queries found in %s", path)}
	}

	return &LoadResult{Document: doc, Path: path, FileCount: fileCount}, nil
}

// FindDocumentFiles returns the query document files directly inside dir.
func FindDocumentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && compiler.IsDocumentFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files, nil
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		return &LoadError{
			Code:    MapFieldToErrorCode(compileErr.Field),
			Message: compileErr.Message,
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{
		Code:    ErrCodeLoadFailed,
		Message: err.Error(),
	}
}

// Error code constants - unified across all CLI commands.
// Document validation codes (E1xx) come from package compiler.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No query documents found
	ErrCodeLoadFailed  = "E004" // Document could not be read or decoded
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE evaluation failed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeCompile     = "E008" // Query could not be compiled to SPARQL
	ErrCodeCatalog     = "E009" // Catalog database error
)

// MapFieldToErrorCode maps a compiler error field to an error code.
func MapFieldToErrorCode(field string) string {
	switch field {
	case "cue":
		return ErrCodeBuildFailed
	case "":
		return ErrCodeGeneric
	default:
		return ErrCodeLoadFailed
	}
}
