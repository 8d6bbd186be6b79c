package cncengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry_LDRatioAndLengthClass(t *testing.T) {
	cases := []struct {
		name  string
		g     Geometry
		ld    float64
		class LengthClass
	}{
		{"short", Geometry{DC_mm: 10, LCF_mm: 5}, 0.5, LengthShort},
		{"boundary-normal", Geometry{DC_mm: 10, LCF_mm: 10}, 1.0, LengthNormal},
		{"normal", Geometry{DC_mm: 10, LCF_mm: 30}, 3.0, LengthNormal},
		{"boundary-long", Geometry{DC_mm: 10, LCF_mm: 40}, 4.0, LengthLong},
		{"long", Geometry{DC_mm: 10, LCF_mm: 50}, 5.0, LengthLong},
		{"very-long", Geometry{DC_mm: 10, LCF_mm: 60}, 6.0, LengthVeryLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.ld, c.g.LDRatio(), 1e-9)
			assert.Equal(t, c.class, c.g.LengthClass())
		})
	}
}

func TestGeometry_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		g := Geometry{DC_mm: 10, LCF_mm: 20, NOF: 2}
		assert.NoError(t, g.Validate())
	})
	t.Run("zero DC", func(t *testing.T) {
		g := Geometry{DC_mm: 0, LCF_mm: 20, NOF: 2}
		err := g.Validate()
		assert.ErrorIs(t, err, ErrInvalidGeometry)
		var ge *GeometryError
		assert.ErrorAs(t, err, &ge)
		assert.Equal(t, "DC_mm", ge.Field)
	})
	t.Run("zero LCF", func(t *testing.T) {
		g := Geometry{DC_mm: 10, LCF_mm: 0, NOF: 2}
		assert.ErrorIs(t, g.Validate(), ErrInvalidGeometry)
	})
	t.Run("NOF out of range", func(t *testing.T) {
		assert.ErrorIs(t, Geometry{DC_mm: 10, LCF_mm: 10, NOF: 0}.Validate(), ErrInvalidGeometry)
		assert.ErrorIs(t, Geometry{DC_mm: 10, LCF_mm: 10, NOF: 13}.Validate(), ErrInvalidGeometry)
	})
}

func TestTool_InferredType(t *testing.T) {
	tool := Tool{Geometry: Geometry{DC_mm: 10, LCF_mm: 10, NOF: 2}}

	assert.Equal(t, ToolBallEndMill, tool.InferredType(Operation{ID: OpBall3D}))
	assert.Equal(t, ToolDrill, tool.InferredType(Operation{ID: OpDrilling}))
	assert.Equal(t, ToolThreadMill, tool.InferredType(Operation{ID: OpThreading}))
	assert.Equal(t, ToolEndMill, tool.InferredType(Operation{ID: OpRoughFace}))
	assert.Equal(t, ToolEndMill, tool.InferredType(Operation{ID: OpPartialSlot}))
}
