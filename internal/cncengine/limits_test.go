package cncengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitMatrix_LookupFoundVsDefaultFallback(t *testing.T) {
	matrix := NewLimitMatrix([]LimitEntry{
		{
			Material: "aluminium", ToolType: ToolEndMill, Operation: OpRoughFace,
			Limits: Limits{AeFactorMax: ptr(0.75), ApFixed: ptr(1.0), MRRMax: ptr(350)},
		},
	})

	limits, usedDefaults := matrix.Resolve("aluminium", ToolEndMill, OpRoughFace, 1.0)
	assert.False(t, usedDefaults)
	require.NotNil(t, limits.AeFactorMax)
	assert.Equal(t, 0.75, *limits.AeFactorMax)

	_, usedDefaults = matrix.Resolve("brass", ToolEndMill, OpRoughFace, 1.0)
	assert.True(t, usedDefaults)
}

func TestLimitMatrix_ResolveAppliesLDReduction(t *testing.T) {
	matrix := NewLimitMatrix([]LimitEntry{
		{
			Material: "aluminium", ToolType: ToolEndMill, Operation: OpPartialSlot,
			Limits: Limits{AeFactorMax: ptr(1.0), MRRMax: ptr(300)},
		},
	})

	// LD 4.5 -> scale factor 0.8
	limits, _ := matrix.Resolve("aluminium", ToolEndMill, OpPartialSlot, 4.5)
	require.NotNil(t, limits.AeFactorMax)
	assert.InDelta(t, 0.8, *limits.AeFactorMax, 1e-9)
	require.NotNil(t, limits.MRRMax)
	assert.InDelta(t, 240.0, *limits.MRRMax, 1e-9)
}

func TestLimitMatrix_CloneIsIndependent(t *testing.T) {
	matrix := NewLimitMatrix([]LimitEntry{
		{Material: "aluminium", ToolType: ToolEndMill, Operation: OpRoughFace, Limits: Limits{AeFactorMax: ptr(0.75)}},
	})

	l1, _ := matrix.Lookup("aluminium", ToolEndMill, OpRoughFace)
	*l1.AeFactorMax = 999

	l2, _ := matrix.Lookup("aluminium", ToolEndMill, OpRoughFace)
	assert.Equal(t, 0.75, *l2.AeFactorMax)
}

func TestDefaultLimits_GroupsByOperation(t *testing.T) {
	faceRough := DefaultLimits(OpRoughFace)
	require.NotNil(t, faceRough.ApFixed)
	assert.Equal(t, 1.0, *faceRough.ApFixed)

	finish := DefaultLimits(OpFinishFace)
	require.NotNil(t, finish.AeFactorMax)
	assert.Equal(t, 0.2, *finish.AeFactorMax)

	slot := DefaultLimits(OpFullSlot)
	require.NotNil(t, slot.ApMinFixed)
	assert.Equal(t, 0.5, *slot.ApMinFixed)

	other := DefaultLimits(OpBall3D)
	require.NotNil(t, other.VfMaxFactor)
	assert.Equal(t, 0.8, *other.VfMaxFactor)
}
