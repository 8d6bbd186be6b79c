package cncengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTool() Tool {
	return Tool{Geometry: Geometry{DC_mm: 10, LCF_mm: 20, NOF: 2}}
}

func baseMaterial() Material {
	return Material{ID: "aluminium", Category: CategoryMetal, MaxTemp_C: 300}
}

func TestValidate_GreenWhenWithinAllLimits(t *testing.T) {
	tool := baseTool()
	material := baseMaterial()
	operation := Operation{ID: OpRoughFace, Category: CatFace}
	preset := Preset{
		Ae_mm: 5.0, Ap_mm: 1.0, N_rpm: 5000, Vf_mm_min: 1000,
		MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100, FzFinal_mm: 0.2,
	}
	limits := Limits{AeFactorMax: ptr(0.7), AeRecommended: ptr(0.5), ApFixed: ptr(1.0), MRRMax: ptr(200)}

	result := validate(tool, material, operation, preset, limits, false, Options{})
	assert.Equal(t, StatusGreen, result.Status)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_RedOnEngagementBelowMinimum(t *testing.T) {
	tool := baseTool()
	material := baseMaterial()
	operation := Operation{ID: OpPartialSlot, Category: CatSlot}
	preset := Preset{Ae_mm: 0.1, Ap_mm: 5, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100}
	limits := Limits{AeFactorMin: ptr(0.1), AeFactorMax: ptr(1.0), MRRMax: ptr(300)}

	result := validate(tool, material, operation, preset, limits, false, Options{})
	require.Equal(t, StatusRed, result.Status)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "V1", result.Errors[0].Check)
}

func TestValidate_YellowWhenDefaultsUsed(t *testing.T) {
	tool := baseTool()
	material := baseMaterial()
	operation := Operation{ID: OpRoughFace, Category: CatFace}
	preset := Preset{Ae_mm: 5.0, Ap_mm: 1.0, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100}
	limits := DefaultLimits(OpRoughFace)

	result := validate(tool, material, operation, preset, limits, true, Options{})
	assert.Equal(t, StatusYellow, result.Status)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "limits", result.Warnings[0].Check)
	assert.True(t, result.LimitsApplied.UsedDefaults)
}

func TestValidate_RedOnSpindlePowerExceeded(t *testing.T) {
	tool := baseTool()
	material := baseMaterial()
	operation := Operation{ID: OpRoughFace, Category: CatFace}
	preset := Preset{Ae_mm: 5.0, Ap_mm: 1.0, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 10.0, ChipTemp_C: 100}
	limits := Limits{AeFactorMax: ptr(0.7), ApFixed: ptr(1.0), MRRMax: ptr(200)}

	result := validate(tool, material, operation, preset, limits, false, Options{SpindlePower: 6.0})
	require.Equal(t, StatusRed, result.Status)
	found := false
	for _, e := range result.Errors {
		if e.Check == "V4" && e.Message == "required spindle power exceeds available power" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_FerrousMinimumChipThickness(t *testing.T) {
	tool := Tool{Geometry: Geometry{DC_mm: 10, LCF_mm: 20, NOF: 2}}
	steel := Material{ID: "steel_mild", Category: CategoryFerrousMetal, HmMin_mm: 0.05, MaxTemp_C: 600}
	operation := Operation{ID: OpPartialSlot, Category: CatSlot}
	// hm = fz*sqrt(ae/DC) = 0.01*sqrt(5/10) = 0.01*0.7071 = 0.00707 < HmMin 0.05
	preset := Preset{Ae_mm: 5.0, Ap_mm: 1.0, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100, FzFinal_mm: 0.01}
	limits := Limits{AeFactorMax: ptr(1.0), ApFactorMax: ptr(1.0), MRRMax: ptr(300)}

	result := validate(tool, steel, operation, preset, limits, false, Options{})
	require.Equal(t, StatusRed, result.Status)
	foundError := false
	for _, e := range result.Errors {
		if e.Check == "V5" && e.Message == "mean chip thickness below minimum (work-hardening risk)" {
			foundError = true
		}
	}
	assert.True(t, foundError)
}

func TestValidate_FerrousMinimumChipThicknessSkippedForThreading(t *testing.T) {
	tool := Tool{Geometry: Geometry{DC_mm: 10, LCF_mm: 20, NOF: 2}}
	steel := Material{ID: "steel_mild", Category: CategoryFerrousMetal, HmMin_mm: 0.05, MaxTemp_C: 600}
	operation := Operation{ID: OpThreading, Category: CatSpecial}
	// fz is always 0 for threading; the hm formula would always fire spuriously
	// if this check weren't scoped away from threading.
	preset := Preset{Ae_mm: 5.0, Ap_mm: 1.0, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100, FzFinal_mm: 0}
	limits := Limits{AeFactorMax: ptr(1.0), ApFactorMax: ptr(1.0), MRRMax: ptr(300)}

	result := validate(tool, steel, operation, preset, limits, false, Options{})
	for _, e := range result.Errors {
		assert.NotEqual(t, "mean chip thickness below minimum (work-hardening risk)", e.Message)
	}
}

func TestValidate_FerrousMinimumChipThicknessAppliesToBall3D(t *testing.T) {
	tool := Tool{Geometry: Geometry{DC_mm: 10, LCF_mm: 20, NOF: 2}}
	steel := Material{ID: "steel_mild", Category: CategoryFerrousMetal, HmMin_mm: 0.05, MaxTemp_C: 600}
	operation := Operation{ID: OpBall3D, Category: CatSpecial}
	preset := Preset{Ae_mm: 5.0, Ap_mm: 1.0, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100, FzFinal_mm: 0.01}
	limits := Limits{AeFactorMax: ptr(1.0), ApFactorMax: ptr(1.0), MRRMax: ptr(300)}

	result := validate(tool, steel, operation, preset, limits, false, Options{})
	found := false
	for _, e := range result.Errors {
		if e.Message == "mean chip thickness below minimum (work-hardening risk)" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidate_Ball3DDepthExceedsRadius(t *testing.T) {
	tool := Tool{Geometry: Geometry{DC_mm: 10, LCF_mm: 40, NOF: 4}}
	material := baseMaterial()
	operation := Operation{ID: OpBall3D, Category: CatSpecial}
	preset := Preset{Ae_mm: 1.0, Ap_mm: 6.0, N_rpm: 5000, Vf_mm_min: 1000, MRR_cm3_min: 10, Power_kW: 1.0, ChipTemp_C: 100}
	limits := Limits{AeFactorMax: ptr(0.5), ApFactorMax: ptr(1.0), MRRMax: ptr(300)}

	result := validate(tool, material, operation, preset, limits, false, Options{})
	require.Equal(t, StatusRed, result.Status)
	found := false
	for _, e := range result.Errors {
		if e.Check == "V3" && e.Message == "ball-end axial depth exceeds tool radius" {
			found = true
		}
	}
	assert.True(t, found)
}
