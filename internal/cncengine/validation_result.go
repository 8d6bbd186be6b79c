package cncengine

// ValidationStatus is the tri-state (plus PENDING) verdict.
type ValidationStatus string

const (
	StatusGreen   ValidationStatus = "GREEN"
	StatusYellow  ValidationStatus = "YELLOW"
	StatusRed     ValidationStatus = "RED"
	StatusPending ValidationStatus = "PENDING"
)

// Diagnostic is one validator emission. Every V1-V5 diagnostic carries
// the offending numeric value and the limit it violated — spec.md §9
// forbids splitting numeric formatting into helpers that lose that
// context, so every diagnostic is built at the point the value and
// limit are both in scope (see validator.go). The "limits" warning for
// the defaults fallback carries no value, limit or unit.
type Diagnostic struct {
	Check   string // which of V1-V5 produced this, or "limits"
	Message string // human-readable, with numeric context baked in
	Value   float64
	Limit   float64
	Unit    string
	Hint    string // actionable follow-up, e.g. "reduce vf"
}

// LimitsSnapshot is the defensive copy of the limits actually applied,
// so a caller cannot mutate shared limit-matrix state through the
// result (§5 "Shared resources").
type LimitsSnapshot struct {
	AeFactorMin    *float64
	AeFactorMax    *float64
	AeRecommended  *float64
	ApFactorMax    *float64
	ApFixed        *float64
	ApMinFixed     *float64
	VfMaxFactor    *float64
	MRRMax         *float64
	UsedDefaults   bool
}

// ValidationResult is the output of the multi-level parameter
// validator (C7).
type ValidationResult struct {
	Status ValidationStatus

	Errors          []Diagnostic
	Warnings        []Diagnostic
	Recommendations []Diagnostic

	MRR_cm3_min float64
	Power_kW    float64

	LimitsApplied LimitsSnapshot
	LDRatio       float64
}

// IsSafe reports whether the result has no errors (GREEN or YELLOW).
func (r ValidationResult) IsSafe() bool { return len(r.Errors) == 0 }

// finalize computes Status from the accumulated lists, enforcing the
// invariant from §3: RED iff errors non-empty, YELLOW iff errors empty
// and warnings non-empty, GREEN iff both empty. Recommendations never
// affect status.
func (r *ValidationResult) finalize() {
	switch {
	case len(r.Errors) > 0:
		r.Status = StatusRed
	case len(r.Warnings) > 0:
		r.Status = StatusYellow
	default:
		r.Status = StatusGreen
	}
}
