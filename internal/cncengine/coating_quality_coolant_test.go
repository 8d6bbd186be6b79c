package cncengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoating_Factor(t *testing.T) {
	f, ok := CoatingTiAlN.Factor()
	require.True(t, ok)
	assert.Equal(t, 1.60, f)

	_, ok = Coating("unknown").Factor()
	assert.False(t, ok)
}

func TestCoating_ForbiddenOnFerrous(t *testing.T) {
	assert.True(t, CoatingDiamond.ForbiddenOnFerrous())
	assert.False(t, CoatingTiN.ForbiddenOnFerrous())
	assert.False(t, CoatingNone.ForbiddenOnFerrous())
}

func TestCoatings_ListsAllWithFactors(t *testing.T) {
	all := Coatings()
	require.Len(t, all, 6)
	for _, c := range all {
		f, ok := c.Coating.Factor()
		require.True(t, ok)
		assert.Equal(t, f, c.Factor)
	}
}

func TestSurfaceQuality_Multipliers(t *testing.T) {
	m := QualityFinishing.Multipliers()
	assert.Equal(t, QualityMultipliers{Ae: 0.7, Ap: 0.8, Feed: 0.8}, m)

	// unrecognised falls back to standard (1,1,1)
	unknown := SurfaceQuality("bogus").Multipliers()
	assert.Equal(t, QualityMultipliers{Ae: 1.0, Ap: 1.0, Feed: 1.0}, unknown)
}

func TestCoolantMode_TemperatureReductionAndDry(t *testing.T) {
	assert.Equal(t, 0.70, CoolantWet.TemperatureReduction())
	assert.Equal(t, 0.85, CoolantMQL.TemperatureReduction())
	assert.Equal(t, 1.00, CoolantDry.TemperatureReduction())

	assert.True(t, CoolantDry.IsDry())
	assert.False(t, CoolantWet.IsDry())
	assert.False(t, CoolantMQL.IsDry())
}

func TestOptions_Normalized(t *testing.T) {
	o := Options{}.normalized()
	assert.Equal(t, CoatingNone, o.Coating)
	assert.Equal(t, QualityStandard, o.SurfaceQuality)
	assert.Equal(t, CoolantWet, o.Coolant)
}

func TestOptions_SpindlePowerKW(t *testing.T) {
	assert.Equal(t, 6.0, Options{}.SpindlePowerKW())
	assert.Equal(t, 9.5, Options{SpindlePower: 9.5}.SpindlePowerKW())
}
