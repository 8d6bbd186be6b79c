package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
	"github.com/alexiusacademia/gocnc/internal/cncengine/config"
)

// buildEngine loads the material/operation/limit tables, preferring a
// --config-dir YAML override when one is set, and wires them into a
// ready-to-use Engine.
func buildEngine() (*cncengine.Engine, error) {
	var (
		tables config.Tables
		err    error
	)
	if configDir != "" {
		tables, err = config.LoadYAMLDir(configDir)
	} else {
		tables, err = config.LoadEmbedded()
	}
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cncengine.NewEngine(tables.Materials, tables.Operations, tables.Limits), nil
}
