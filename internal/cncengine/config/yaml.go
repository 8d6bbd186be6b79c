package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

// LoadYAMLDir loads materials.yaml, operations.yaml and
// operation_limits.yaml from dir, for operators who want to override
// the embedded tables with a site-specific machine profile without
// rebuilding the binary. The on-disk schema mirrors the embedded JSON
// one field-for-field; only the encoding differs.
func LoadYAMLDir(dir string) (Tables, error) {
	var materialRecords []materialRecord
	if err := readYAML(filepath.Join(dir, "materials.yaml"), &materialRecords); err != nil {
		return Tables{}, err
	}
	var operationRecords []operationRecord
	if err := readYAML(filepath.Join(dir, "operations.yaml"), &operationRecords); err != nil {
		return Tables{}, err
	}
	var limitRecords []limitEntryRecord
	if err := readYAML(filepath.Join(dir, "operation_limits.yaml"), &limitRecords); err != nil {
		return Tables{}, err
	}

	materials := make([]cncengine.Material, 0, len(materialRecords))
	for _, r := range materialRecords {
		materials = append(materials, r.toMaterial())
	}
	operations := make([]cncengine.Operation, 0, len(operationRecords))
	for _, r := range operationRecords {
		operations = append(operations, r.toOperation())
	}
	entries := make([]cncengine.LimitEntry, 0, len(limitRecords))
	for _, r := range limitRecords {
		entries = append(entries, r.toLimitEntry())
	}

	return Tables{
		Materials:  cncengine.NewMaterialTable(materials),
		Operations: cncengine.NewOperationTable(operations),
		Limits:     cncengine.NewLimitMatrix(entries),
	}, nil
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}
