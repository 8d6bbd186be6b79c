package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gocnc/internal/cncengine"
)

func TestLoadEmbedded_AluminiumFaceRoughingEndToEnd(t *testing.T) {
	tables, err := LoadEmbedded()
	require.NoError(t, err)

	engine := cncengine.NewEngine(tables.Materials, tables.Operations, tables.Limits)

	tool := cncengine.Tool{Geometry: cncengine.Geometry{DC_mm: 30, LCF_mm: 8, NOF: 3}}
	opts := cncengine.Options{Coating: cncengine.CoatingTiN}

	preset, validation, err := engine.Calculate(tool, "aluminium", cncengine.OpRoughFace, opts)
	require.NoError(t, err)

	assert.InDelta(t, 527.8, preset.VcFinal_m_min, 1e-9)
	assert.InDelta(t, 5600.0, preset.N_rpm, 1e-9)
	assert.InDelta(t, 7.5, preset.Ae_mm, 1e-9)
	assert.InDelta(t, 1.0, preset.Ap_mm, 1e-9)
	assert.InDelta(t, 3680.6955864, preset.Vf_mm_min, 1e-3)
	assert.InDelta(t, 27.605217648, preset.MRR_cm3_min, 1e-3)
	assert.InDelta(t, 0.32206087256, preset.Power_kW, 1e-3)
	assert.InDelta(t, 139.3, preset.ChipTemp_C, 1e-9)
	assert.Equal(t, cncengine.ChipContinuous, preset.ChipFormation)
	assert.Equal(t, cncengine.LengthShort, preset.LengthClass)

	assert.Equal(t, cncengine.StatusGreen, validation.Status)
	assert.Empty(t, validation.Errors)
	assert.Empty(t, validation.Warnings)
	require.Len(t, validation.Recommendations, 1)
	assert.Contains(t, validation.Recommendations[0].Message, "inefficiently low")
	assert.False(t, validation.LimitsApplied.UsedDefaults)
}

func TestLoadEmbedded_SteelSlotRoughingAppliesDryAndLDCorrection(t *testing.T) {
	tables, err := LoadEmbedded()
	require.NoError(t, err)

	engine := cncengine.NewEngine(tables.Materials, tables.Operations, tables.Limits)

	// A long, thin tool (L/D = 6) cutting a partial slot in mild steel dry
	// takes both the dry factor and the L/D chip-load correction:
	// fz = 0.03*sqrt(6) * 0.85 (dry) * 0.7 (L/D > 5) = 0.0437234.
	tool := cncengine.Tool{Geometry: cncengine.Geometry{DC_mm: 6, LCF_mm: 36, NOF: 2}}
	opts := cncengine.Options{Coolant: cncengine.CoolantDry}

	preset, validation, err := engine.Calculate(tool, "steel_mild", cncengine.OpPartialSlot, opts)
	require.NoError(t, err)

	assert.Greater(t, preset.LDRatio, 3.0)
	assert.NotEmpty(t, preset.FzFinal_mm)
	assert.InDelta(t, 0.0437234, preset.FzFinal_mm, 1e-6)
	assert.NotEqual(t, cncengine.StatusPending, validation.Status)
}

func TestLoadEmbedded_MaterialAndOperationTablesAreFullyPopulated(t *testing.T) {
	tables, err := LoadEmbedded()
	require.NoError(t, err)

	materials := tables.Materials.List()
	require.Len(t, materials, 8)

	operations := tables.Operations.List()
	require.Len(t, operations, 12)

	_, ok := tables.Materials.Lookup("aluminium")
	assert.True(t, ok)
	_, ok = tables.Operations.Lookup(cncengine.OpThreading)
	assert.True(t, ok)
}

func TestLoadEmbedded_BrassFallsBackToDefaultLimits(t *testing.T) {
	tables, err := LoadEmbedded()
	require.NoError(t, err)

	engine := cncengine.NewEngine(tables.Materials, tables.Operations, tables.Limits)
	tool := cncengine.Tool{Geometry: cncengine.Geometry{DC_mm: 10, LCF_mm: 20, NOF: 2}}

	_, validation, err := engine.Calculate(tool, "brass", cncengine.OpRoughFace, cncengine.Options{})
	require.NoError(t, err)

	assert.True(t, validation.LimitsApplied.UsedDefaults)
	found := false
	for _, w := range validation.Warnings {
		if w.Check == "limits" {
			found = true
		}
	}
	assert.True(t, found)
}
