package cncengine

import "math"

// validate runs the five independent checks (V1-V5) in fixed order and
// aggregates them into one ValidationResult (C7, §4.4). Checks never
// short-circuit — every signal is gathered before status is computed.
func validate(tool Tool, material Material, operation Operation, preset Preset, limits Limits, usedDefaults bool, opts Options) ValidationResult {
	result := ValidationResult{
		LDRatio:       tool.Geometry.LDRatio(),
		LimitsApplied: limits.snapshot(usedDefaults),
	}

	if usedDefaults {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check:   "limits",
			Message: "no specific limits defined for this material/tool-type/operation combination; using conservative defaults",
		})
	}

	validateEngagement(tool, limits, preset, &result)
	validateDepth(tool, material, limits, preset, &result)
	validateGeometry(tool, operation, preset, &result)
	validateMRRAndPower(material, limits, preset, opts, &result)
	validateOperationalSanity(tool, material, operation, preset, opts, &result)

	result.finalize()
	return result
}

// validateEngagement is V1 — radial engagement.
func validateEngagement(tool Tool, limits Limits, preset Preset, result *ValidationResult) {
	DC := tool.Geometry.DC_mm

	aeFactorMin := 0.05
	if limits.AeFactorMin != nil {
		aeFactorMin = *limits.AeFactorMin
	}
	aeFactorMax := 0.5
	if limits.AeFactorMax != nil {
		aeFactorMax = *limits.AeFactorMax
	}
	aeFactorRecommended := aeFactorMax
	if limits.AeRecommended != nil {
		aeFactorRecommended = *limits.AeRecommended
	}

	aeMin := aeFactorMin * DC
	aeMax := aeFactorMax * DC
	aeRecommended := aeFactorRecommended * DC

	ae := preset.Ae_mm

	if ae < aeMin {
		result.Errors = append(result.Errors, Diagnostic{
			Check: "V1", Message: "radial engagement too small (rubbing risk)",
			Value: ae, Limit: aeMin, Unit: "mm",
			Hint: "increase ae (radial depth of cut)",
		})
		return
	}
	if ae > aeMax {
		result.Errors = append(result.Errors, Diagnostic{
			Check: "V1", Message: "radial engagement exceeds maximum",
			Value: ae, Limit: aeMax, Unit: "mm",
			Hint: "reduce ae (radial depth of cut)",
		})
		return
	}
	if ae > 0.9*aeMax {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V1", Message: "radial engagement near maximum (high load)",
			Value: ae, Limit: aeMax, Unit: "mm",
		})
	}
	if ae < 0.7*aeRecommended {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V1", Message: "radial engagement below recommended (sub-optimal)",
			Value: ae, Limit: aeRecommended, Unit: "mm",
		})
	}
}

// validateDepth is V2 — axial depth.
func validateDepth(tool Tool, material Material, limits Limits, preset Preset, result *ValidationResult) {
	ap := preset.Ap_mm
	LCF := tool.Geometry.LCF_mm

	if limits.ApFixed != nil {
		if math.Abs(ap-*limits.ApFixed) > 0.05 {
			result.Warnings = append(result.Warnings, Diagnostic{
				Check: "V2", Message: "axial depth deviates from the standard value for this operation",
				Value: ap, Limit: *limits.ApFixed, Unit: "mm",
			})
		}
		return
	}

	apMin := material.ApMin_mm
	if limits.ApMinFixed != nil && *limits.ApMinFixed > apMin {
		apMin = *limits.ApMinFixed
	}
	if apMin > 0 && ap < apMin {
		result.Errors = append(result.Errors, Diagnostic{
			Check: "V2", Message: "axial depth below minimum (work-hardening risk)",
			Value: ap, Limit: apMin, Unit: "mm",
			Hint: "increase ap (axial depth of cut)",
		})
		return
	}

	if limits.ApFactorMax != nil {
		apMax := *limits.ApFactorMax * LCF
		if ap > apMax {
			result.Errors = append(result.Errors, Diagnostic{
				Check: "V2", Message: "axial depth exceeds maximum",
				Value: ap, Limit: apMax, Unit: "mm",
				Hint: "reduce ap (axial depth of cut)",
			})
			return
		}
		if ap > 0.9*apMax {
			result.Warnings = append(result.Warnings, Diagnostic{
				Check: "V2", Message: "axial depth near maximum (high load)",
				Value: ap, Limit: apMax, Unit: "mm",
			})
		}
	}
}

// validateGeometry is V3 — geometry-specific constraints and L/D tiering.
func validateGeometry(tool Tool, operation Operation, preset Preset, result *ValidationResult) {
	g := tool.Geometry

	switch operation.ID {
	case OpBall3D:
		radius := g.DC_mm / 2
		if preset.Ap_mm > radius {
			result.Errors = append(result.Errors, Diagnostic{
				Check: "V3", Message: "ball-end axial depth exceeds tool radius",
				Value: preset.Ap_mm, Limit: radius, Unit: "mm",
				Hint: "reduce ap to at most the ball radius",
			})
		}
	case OpRadiusContour:
		if g.HasCornerRadius() {
			maxAp := 2 * g.CornerRadius_mm
			if preset.Ap_mm > maxAp {
				result.Errors = append(result.Errors, Diagnostic{
					Check: "V3", Message: "radius-mill axial depth exceeds 2x corner radius",
					Value: preset.Ap_mm, Limit: maxAp, Unit: "mm",
				})
			}
		}
	case OpVGroove, OpChamferContour:
		maxAp := 0.4 * g.DC_mm
		if preset.Ap_mm > maxAp {
			result.Warnings = append(result.Warnings, Diagnostic{
				Check: "V3", Message: "V-tool axial depth may be too deep for the included angle; verify against workpiece geometry",
				Value: preset.Ap_mm, Limit: maxAp, Unit: "mm",
			})
		}
	}

	ld := g.LDRatio()
	switch {
	case ld > 5.0:
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V3", Message: "L/D ratio very high: limits reduced 30%",
			Value: ld, Limit: 5.0, Unit: "ratio",
		})
	case ld > 4.0:
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V3", Message: "L/D ratio high: deflection risk",
			Value: ld, Limit: 4.0, Unit: "ratio",
		})
	case ld > 3.0:
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V3", Message: "L/D ratio elevated: limits reduced",
			Value: ld, Limit: 3.0, Unit: "ratio",
		})
	}
}

// validateMRRAndPower is V4 — material removal rate and spindle power.
func validateMRRAndPower(material Material, limits Limits, preset Preset, opts Options, result *ValidationResult) {
	mrr := preset.MRR_cm3_min
	power := preset.Power_kW
	result.MRR_cm3_min = mrr
	result.Power_kW = power

	mrrMax := 500.0
	if limits.MRRMax != nil {
		mrrMax = *limits.MRRMax
	}
	spindlePower := opts.SpindlePowerKW()

	if mrr > mrrMax {
		vfSafe := (mrrMax * 1000) / (preset.Ae_mm * preset.Ap_mm)
		result.Errors = append(result.Errors, Diagnostic{
			Check: "V4", Message: "material removal rate exceeds limit",
			Value: mrr, Limit: mrrMax, Unit: "cm3/min",
		})
		result.Recommendations = append(result.Recommendations, Diagnostic{
			Check: "V4", Message: "reduce feed rate to stay within the MRR limit",
			Value: preset.Vf_mm_min, Limit: vfSafe, Unit: "mm/min",
			Hint: "reduce vf",
		})
	}
	if power > spindlePower {
		result.Errors = append(result.Errors, Diagnostic{
			Check: "V4", Message: "required spindle power exceeds available power",
			Value: power, Limit: spindlePower, Unit: "kW",
			Hint: "reduce vf or ap to lower MRR",
		})
	}
	if mrr > 0.9*mrrMax {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V4", Message: "material removal rate near limit",
			Value: mrr, Limit: mrrMax, Unit: "cm3/min",
		})
	}
	if power > 0.8*spindlePower {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V4", Message: "spindle power near available limit",
			Value: power, Limit: spindlePower, Unit: "kW",
		})
	}
	if mrr < 0.3*mrrMax {
		result.Recommendations = append(result.Recommendations, Diagnostic{
			Check: "V4", Message: "material removal rate is inefficiently low; consider raising feed",
			Value: mrr, Limit: mrrMax, Unit: "cm3/min",
		})
	}
}

// validateOperationalSanity is V5 — rotation/feed sanity and the
// ferrous-only minimum chip thickness and temperature checks.
func validateOperationalSanity(tool Tool, material Material, operation Operation, preset Preset, opts Options, result *ValidationResult) {
	rpmMin, rpmMax := opts.SpindleRange()

	if preset.N_rpm < rpmMin {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V5", Message: "spindle speed below machine minimum",
			Value: preset.N_rpm, Limit: rpmMin, Unit: "rpm",
		})
	}
	if preset.N_rpm > rpmMax {
		result.Errors = append(result.Errors, Diagnostic{
			Check: "V5", Message: "spindle speed exceeds machine maximum",
			Value: preset.N_rpm, Limit: rpmMax, Unit: "rpm",
		})
	}
	if preset.Vf_mm_min < 10 {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V5", Message: "feed rate very low",
			Value: preset.Vf_mm_min, Limit: 10, Unit: "mm/min",
		})
	}
	if preset.Vf_mm_min > 5000 {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V5", Message: "feed rate very high",
			Value: preset.Vf_mm_min, Limit: 5000, Unit: "mm/min",
		})
	}

	// hm models side-milling chip thickness; drilling (fixed fz) and
	// threading (fz=0) engage the material too differently for this
	// formula to mean anything, so only those two are excluded.
	if material.Category.IsFerrous() && operation.ID != OpDrilling && operation.ID != OpThreading {
		DC := tool.Geometry.DC_mm
		hm := preset.FzFinal_mm * math.Sqrt(preset.Ae_mm/DC)
		if hm < material.HmMin_mm {
			fzRequired := material.HmMin_mm / math.Sqrt(preset.Ae_mm/DC)
			result.Errors = append(result.Errors, Diagnostic{
				Check: "V5", Message: "mean chip thickness below minimum (work-hardening risk)",
				Value: hm, Limit: material.HmMin_mm, Unit: "mm",
				Hint: "increase fz",
			})
			result.Recommendations = append(result.Recommendations, Diagnostic{
				Check: "V5", Message: "recommended minimum feed per tooth to avoid work-hardening",
				Value: preset.FzFinal_mm, Limit: fzRequired, Unit: "mm",
			})
		}
	}

	if preset.ChipTemp_C > material.MaxTemp_C {
		result.Warnings = append(result.Warnings, Diagnostic{
			Check: "V5", Message: "chip temperature above material maximum",
			Value: preset.ChipTemp_C, Limit: material.MaxTemp_C, Unit: "C",
		})
	}
}
