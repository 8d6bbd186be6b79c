package cncengine

// mrrCm3Min computes material-removal rate from engagement, depth and
// feed rate (step 9, §4.1): MRR = (ae * ap * vf) / 1000.
func mrrCm3Min(ae_mm, ap_mm, vf_mm_min float64) float64 {
	return (ae_mm * ap_mm * vf_mm_min) / 1000
}

// powerKW computes required spindle power from MRR and the material's
// specific cutting force: Power = (MRR * kc) / 60000.
func powerKW(mrr_cm3_min, kc_N_mm2 float64) float64 {
	return (mrr_cm3_min * kc_N_mm2) / 60000
}

// torqueNm computes spindle torque from power and rotation speed:
// Torque = (9550 * Power) / n, zero when n is not positive.
func torqueNm(power_kW, n_rpm float64) float64 {
	if n_rpm <= 0 {
		return 0
	}
	return (9550 * power_kW) / n_rpm
}
