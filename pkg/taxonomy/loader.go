package taxonomy

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Categories []categoryFile `json:"categories" yaml:"categories"`
}

type categoryFile struct {
	ID       string     `json:"id" yaml:"id"`
	Name     string     `json:"name" yaml:"name"`
	Icon     string     `json:"icon" yaml:"icon"`
	SubTypes *[]SubType `json:"subTypes" yaml:"subTypes"`
}

// Load parses a JSON or YAML catalog document. source is used in error
// messages only.
func Load(data []byte, source string) (*Catalog, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(doc.Categories))
	for _, raw := range doc.Categories {
		entry := Entry{
			Category: Category{ID: raw.ID, Name: raw.Name, Icon: raw.Icon},
		}
		if raw.SubTypes != nil {
			entry.SubTypes = append([]SubType{}, (*raw.SubTypes)...)
		}
		entries = append(entries, entry)
	}

	catalog, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: %s: %w", source, err)
	}
	return catalog, nil
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("taxonomy: catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	return Load(data, path)
}

// LoadFS reads a catalog document from fsys.
func LoadFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("taxonomy: filesystem is nil")
	}
	if !isCatalogFile(path) {
		return nil, fmt.Errorf("taxonomy: %s is not a JSON or YAML file", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}
	return Load(data, path)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("taxonomy: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("taxonomy: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
