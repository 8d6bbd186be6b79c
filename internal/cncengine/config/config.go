// Package config loads the material, operation and limit tables that
// feed a cncengine.Engine. The engine itself never touches disk or any
// serialisation format (§5's purity guarantee); this package is the
// one place that bridges on-disk configuration into the engine's
// in-memory, immutable tables.
package config

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

//go:embed data/materials.json data/operations.json data/operation_limits.json
var embedded embed.FS

type materialRecord struct {
	ID                 string  `json:"id" yaml:"id"`
	Name               string  `json:"name" yaml:"name"`
	Abbreviation       string  `json:"abbreviation" yaml:"abbreviation"`
	Category           string  `json:"category" yaml:"category"`
	HardnessRank       int     `json:"hardness_rank" yaml:"hardness_rank"`
	DisplayColor       string  `json:"display_color" yaml:"display_color"`
	VcBaseMMin         float64 `json:"vc_base_m_min" yaml:"vc_base_m_min"`
	KcNMm2             float64 `json:"kc_n_mm2" yaml:"kc_n_mm2"`
	DryMachiningFactor float64 `json:"dry_machining_factor" yaml:"dry_machining_factor"`
	MaxTempC           float64 `json:"max_temp_c" yaml:"max_temp_c"`
	ThermalFactor      float64 `json:"thermal_factor" yaml:"thermal_factor"`
	FzK                float64 `json:"fz_k" yaml:"fz_k"`
	DiameterExponent   float64 `json:"diameter_exponent" yaml:"diameter_exponent"`
	ApMaxFactor        float64 `json:"ap_max_factor" yaml:"ap_max_factor"`
	RampAngleBaseDeg   float64 `json:"ramp_angle_base_deg" yaml:"ramp_angle_base_deg"`
	HmMinMm            float64 `json:"hm_min_mm" yaml:"hm_min_mm"`
	ApMinMm            float64 `json:"ap_min_mm" yaml:"ap_min_mm"`
	VcFinishFactor     float64 `json:"vc_finish_factor" yaml:"vc_finish_factor"`
	FzFinishFactor     float64 `json:"fz_finish_factor" yaml:"fz_finish_factor"`
}

func (r materialRecord) toMaterial() cncengine.Material {
	return cncengine.Material{
		ID:                 r.ID,
		Name:               r.Name,
		Abbreviation:       r.Abbreviation,
		Category:           cncengine.MaterialCategory(r.Category),
		HardnessRank:       r.HardnessRank,
		DisplayColor:       r.DisplayColor,
		VcBase_m_min:       r.VcBaseMMin,
		Kc_N_mm2:           r.KcNMm2,
		DryMachiningFactor: r.DryMachiningFactor,
		MaxTemp_C:          r.MaxTempC,
		ThermalFactor:      r.ThermalFactor,
		FzK:                r.FzK,
		DiameterExponent:   r.DiameterExponent,
		ApMaxFactor:        r.ApMaxFactor,
		RampAngleBaseDeg:   r.RampAngleBaseDeg,
		HmMin_mm:           r.HmMinMm,
		ApMin_mm:           r.ApMinMm,
		VcFinishFactor:     r.VcFinishFactor,
		FzFinishFactor:     r.FzFinishFactor,
	}
}

type feedRecord struct {
	Entry      float64 `json:"entry" yaml:"entry"`
	Exit       float64 `json:"exit" yaml:"exit"`
	Plunge     float64 `json:"plunge" yaml:"plunge"`
	Ramp       float64 `json:"ramp" yaml:"ramp"`
	Transition float64 `json:"transition" yaml:"transition"`
}

func (f feedRecord) toFeedFactors() cncengine.FeedFactors {
	return cncengine.FeedFactors{Entry: f.Entry, Exit: f.Exit, Plunge: f.Plunge, Ramp: f.Ramp, Transition: f.Transition}
}

type operationRecord struct {
	ID                string             `json:"id" yaml:"id"`
	Name              string             `json:"name" yaml:"name"`
	Category          string             `json:"category" yaml:"category"`
	AeFactor          float64            `json:"ae_factor" yaml:"ae_factor"`
	ApFactor          float64            `json:"ap_factor" yaml:"ap_factor"`
	AxialReference    string             `json:"axial_reference" yaml:"axial_reference"`
	VcFactor          float64            `json:"vc_factor" yaml:"vc_factor"`
	FzFactor          float64            `json:"fz_factor" yaml:"fz_factor"`
	Feed              feedRecord         `json:"feed" yaml:"feed"`
	MaterialVcFactors map[string]float64 `json:"material_vc_factors" yaml:"material_vc_factors"`
	MaterialFz        map[string]float64 `json:"material_fz" yaml:"material_fz"`
	RotationBoost     float64            `json:"rotation_boost" yaml:"rotation_boost"`
}

func (r operationRecord) toOperation() cncengine.Operation {
	return cncengine.Operation{
		ID:                r.ID,
		Name:              r.Name,
		Category:          cncengine.OperationCategory(r.Category),
		AeFactor:          r.AeFactor,
		ApFactor:          r.ApFactor,
		AxialReference:    cncengine.AxialReference(r.AxialReference),
		VcFactor:          r.VcFactor,
		FzFactor:          r.FzFactor,
		Feed:              r.Feed.toFeedFactors(),
		MaterialVcFactors: r.MaterialVcFactors,
		MaterialFz:        r.MaterialFz,
		RotationBoost:     r.RotationBoost,
	}
}

type limitsRecord struct {
	AeFactorMin   *float64 `json:"ae_factor_min,omitempty" yaml:"ae_factor_min,omitempty"`
	AeFactorMax   *float64 `json:"ae_factor_max,omitempty" yaml:"ae_factor_max,omitempty"`
	AeRecommended *float64 `json:"ae_recommended,omitempty" yaml:"ae_recommended,omitempty"`
	ApFactorMax   *float64 `json:"ap_factor_max,omitempty" yaml:"ap_factor_max,omitempty"`
	ApFixed       *float64 `json:"ap_fixed,omitempty" yaml:"ap_fixed,omitempty"`
	ApMinFixed    *float64 `json:"ap_min_fixed,omitempty" yaml:"ap_min_fixed,omitempty"`
	VfMaxFactor   *float64 `json:"vf_max_factor,omitempty" yaml:"vf_max_factor,omitempty"`
	MRRMax        *float64 `json:"mrr_max,omitempty" yaml:"mrr_max,omitempty"`
}

func (r limitsRecord) toLimits() cncengine.Limits {
	return cncengine.Limits{
		AeFactorMin:   r.AeFactorMin,
		AeFactorMax:   r.AeFactorMax,
		AeRecommended: r.AeRecommended,
		ApFactorMax:   r.ApFactorMax,
		ApFixed:       r.ApFixed,
		ApMinFixed:    r.ApMinFixed,
		VfMaxFactor:   r.VfMaxFactor,
		MRRMax:        r.MRRMax,
	}
}

type limitEntryRecord struct {
	Material  string       `json:"material" yaml:"material"`
	ToolType  string       `json:"tool_type" yaml:"tool_type"`
	Operation string       `json:"operation" yaml:"operation"`
	Limits    limitsRecord `json:"limits" yaml:"limits"`
}

func (r limitEntryRecord) toLimitEntry() cncengine.LimitEntry {
	return cncengine.LimitEntry{
		Material:  r.Material,
		ToolType:  cncengine.ToolType(r.ToolType),
		Operation: r.Operation,
		Limits:    r.Limits.toLimits(),
	}
}

// Tables is the fully-loaded, ready-to-wire input for cncengine.NewEngine.
type Tables struct {
	Materials  cncengine.MaterialTable
	Operations cncengine.OperationTable
	Limits     cncengine.LimitMatrix
}

// LoadEmbedded loads the tables shipped inside the binary. This is the
// zero-configuration path the CLI uses by default.
func LoadEmbedded() (Tables, error) {
	materials, err := loadMaterials(embedded, "data/materials.json")
	if err != nil {
		return Tables{}, err
	}
	operations, err := loadOperations(embedded, "data/operations.json")
	if err != nil {
		return Tables{}, err
	}
	limits, err := loadLimits(embedded, "data/operation_limits.json")
	if err != nil {
		return Tables{}, err
	}
	return Tables{Materials: materials, Operations: operations, Limits: limits}, nil
}

type fileReader interface {
	ReadFile(name string) ([]byte, error)
}

func loadMaterials(fsys fileReader, path string) (cncengine.MaterialTable, error) {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return cncengine.MaterialTable{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var records []materialRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return cncengine.MaterialTable{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	materials := make([]cncengine.Material, 0, len(records))
	for _, r := range records {
		materials = append(materials, r.toMaterial())
	}
	return cncengine.NewMaterialTable(materials), nil
}

func loadOperations(fsys fileReader, path string) (cncengine.OperationTable, error) {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return cncengine.OperationTable{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var records []operationRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return cncengine.OperationTable{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	operations := make([]cncengine.Operation, 0, len(records))
	for _, r := range records {
		operations = append(operations, r.toOperation())
	}
	return cncengine.NewOperationTable(operations), nil
}

func loadLimits(fsys fileReader, path string) (cncengine.LimitMatrix, error) {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return cncengine.LimitMatrix{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var records []limitEntryRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return cncengine.LimitMatrix{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	entries := make([]cncengine.LimitEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.toLimitEntry())
	}
	return cncengine.NewLimitMatrix(entries), nil
}
