package cncengine

import "math"

// resolveAuxiliaryFeeds derives the entry/exit/ramp/plunge/transition
// feed rates from the base feed rate (C8, §4.5). It returns both the
// corrected relative factors and the ramp angle used.
func resolveAuxiliaryFeeds(operation Operation, material Material, tool Tool, vf_mm_min float64) AuxiliaryFeeds {
	f := operation.Feed

	// Material correction.
	switch material.ID {
	case "steel_mild":
		f.Plunge *= 0.6
		f.Ramp *= 0.5
		f.Entry *= 0.7
	case "stainless":
		f.Plunge *= 0.5
		f.Ramp *= 0.4
		f.Entry *= 0.6
	}

	// L/D correction: for LD > 3, scale plunge and ramp.
	ld := tool.Geometry.LDRatio()
	if ld > 3.0 {
		ldFactor := math.Max(1-0.1*(ld-3.0), 0.7)
		f.Plunge *= ldFactor
		f.Ramp *= ldFactor
	}

	// Dry machining: always scales plunge and ramp by 0.85.
	f.Plunge *= 0.85
	f.Ramp *= 0.85

	// Ramp angle: base per material, diameter and full-slot adjusted.
	rampAngle := material.RampAngleBaseDeg
	DC := tool.Geometry.DC_mm
	switch {
	case DC > 12:
		rampAngle *= 0.6
	case DC > 8:
		rampAngle *= 0.8
	}
	if operation.ID == OpFullSlot {
		rampAngle *= 0.5
	}

	return AuxiliaryFeeds{
		Entry_mm_min:      f.Entry * vf_mm_min,
		Exit_mm_min:       f.Exit * vf_mm_min,
		Ramp_mm_min:       f.Ramp * vf_mm_min,
		Plunge_mm_min:     f.Plunge * vf_mm_min,
		Transition_mm_min: f.Transition * vf_mm_min,

		EntryFactor:      f.Entry,
		ExitFactor:       f.Exit,
		RampFactor:       f.Ramp,
		PlungeFactor:     f.Plunge,
		TransitionFactor: f.Transition,

		RampAngle_deg: rampAngle,
	}
}
