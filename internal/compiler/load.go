package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/spanqit/internal/queryir"
)

// Document file extensions.
const (
	ExtCUE  = ".cue"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtJSON = ".json"
)

// IsDocumentFile reports whether path has a query document extension.
func IsDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtCUE, ExtYAML, ExtYML, ExtJSON:
		return true
	}
	return false
}

// LoadFile reads one query document. The format follows the extension.
func LoadFile(path string) (*queryir.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtCUE:
		return CompileSource(path, data)
	case ExtYAML, ExtYML:
		doc, err := queryir.DecodeYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	case ExtJSON:
		doc, err := queryir.DecodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%s: unsupported document type %q", path, filepath.Ext(path))
	}
}

// LoadDir loads every query document directly inside dir and merges them.
// The .cue files form one CUE package and are unified before compiling;
// YAML and JSON files are decoded one by one in name order. Duplicate query
// names across files are left for Validate to report.
func LoadDir(dir string) (*queryir.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var cueFiles, dataFiles []string
	for _, e := range entries {
		if e.IsDir() || !IsDocumentFile(e.Name()) {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ExtCUE) {
			cueFiles = append(cueFiles, e.Name())
		} else {
			dataFiles = append(dataFiles, e.Name())
		}
	}
	if len(cueFiles) == 0 && len(dataFiles) == 0 {
		return nil, fmt.Errorf("no query documents found in %s", dir)
	}
	sort.Strings(dataFiles)

	var docs []*queryir.Document
	if len(cueFiles) > 0 {
		doc, err := loadCUEPackage(dir)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	for _, name := range dataFiles {
		doc, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return Merge(docs...), nil
}

// Load loads path as a file or, when it is a directory, with LoadDir.
func Load(path string) (*queryir.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// Merge concatenates the queries of docs in order.
func Merge(docs ...*queryir.Document) *queryir.Document {
	merged := &queryir.Document{}
	for _, doc := range docs {
		if doc != nil {
			merged.Queries = append(merged.Queries, doc.Queries...)
		}
	}
	return merged
}

func loadCUEPackage(dir string) (*queryir.Document, error) {
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances loaded from %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, formatCUEError(inst.Err)
	}

	value := cuecontext.New().BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileDocument(value)
}
