package cncengine

// Limits is one cell of the 3-D limit matrix (C3). A field is "unset"
// when its pointer is nil, distinguishing "no limit defined" from "a
// limit of zero".
type Limits struct {
	AeFactorMin   *float64
	AeFactorMax   *float64
	AeRecommended *float64
	ApFactorMax   *float64
	ApFixed       *float64
	ApMinFixed    *float64
	VfMaxFactor   *float64
	MRRMax        *float64
}

func ptr(f float64) *float64 { return &f }

// clone returns a deep copy so callers (and the validator's defensive
// snapshot) can never mutate the matrix's shared state.
func (l Limits) clone() Limits {
	cp := func(p *float64) *float64 {
		if p == nil {
			return nil
		}
		return ptr(*p)
	}
	return Limits{
		AeFactorMin:   cp(l.AeFactorMin),
		AeFactorMax:   cp(l.AeFactorMax),
		AeRecommended: cp(l.AeRecommended),
		ApFactorMax:   cp(l.ApFactorMax),
		ApFixed:       cp(l.ApFixed),
		ApMinFixed:    cp(l.ApMinFixed),
		VfMaxFactor:   cp(l.VfMaxFactor),
		MRRMax:        cp(l.MRRMax),
	}
}

func (l Limits) snapshot(usedDefaults bool) LimitsSnapshot {
	c := l.clone()
	return LimitsSnapshot{
		AeFactorMin:   c.AeFactorMin,
		AeFactorMax:   c.AeFactorMax,
		AeRecommended: c.AeRecommended,
		ApFactorMax:   c.ApFactorMax,
		ApFixed:       c.ApFixed,
		ApMinFixed:    c.ApMinFixed,
		VfMaxFactor:   c.VfMaxFactor,
		MRRMax:        c.MRRMax,
		UsedDefaults:  usedDefaults,
	}
}

// ldScaleFactor implements the L/D reduction step applied to every
// adjustable limit (§4.3): 1.0 up to 3.0, then 0.9 / 0.8 / 0.7 at the
// 4.0 / 5.0 thresholds.
func ldScaleFactor(ld float64) float64 {
	switch {
	case ld <= 3.0:
		return 1.0
	case ld <= 4.0:
		return 0.9
	case ld <= 5.0:
		return 0.8
	default:
		return 0.7
	}
}

// applyLDReduction scales the adjustable fields (ae_factor_*,
// ap_factor_max, vf_max_factor, mrr_max) by the L/D step factor.
// ap_fixed and ap_min_fixed are fixed values and are never scaled.
func (l Limits) applyLDReduction(ld float64) Limits {
	factor := ldScaleFactor(ld)
	out := l.clone()
	scale := func(p *float64) *float64 {
		if p == nil {
			return nil
		}
		return ptr(*p * factor)
	}
	out.AeFactorMin = scale(out.AeFactorMin)
	out.AeFactorMax = scale(out.AeFactorMax)
	out.AeRecommended = scale(out.AeRecommended)
	out.ApFactorMax = scale(out.ApFactorMax)
	out.VfMaxFactor = scale(out.VfMaxFactor)
	out.MRRMax = scale(out.MRRMax)
	return out
}

// limitsKey identifies one cell of the matrix.
type limitsKey struct {
	Material  string
	ToolType  ToolType
	Operation string
}

// LimitMatrix is the immutable, 3-D keyed limit table (C3) with a
// conservative defaults fallback.
type LimitMatrix struct {
	cells map[limitsKey]Limits
}

// NewLimitMatrix builds an immutable matrix from cell entries.
func NewLimitMatrix(entries []LimitEntry) LimitMatrix {
	m := LimitMatrix{cells: make(map[limitsKey]Limits, len(entries))}
	for _, e := range entries {
		m.cells[limitsKey{Material: e.Material, ToolType: e.ToolType, Operation: e.Operation}] = e.Limits
	}
	return m
}

// LimitEntry is one row used to build a LimitMatrix.
type LimitEntry struct {
	Material  string
	ToolType  ToolType
	Operation string
	Limits    Limits
}

// Lookup returns the raw (unscaled) limits for a cell, or false if the
// combination is not defined.
func (m LimitMatrix) Lookup(material string, toolType ToolType, operation string) (Limits, bool) {
	l, ok := m.cells[limitsKey{Material: material, ToolType: toolType, Operation: operation}]
	if !ok {
		return Limits{}, false
	}
	return l.clone(), true
}

// operationGroup classifies an operation id into the fallback-default
// buckets from §4.3.
func operationGroup(operationID string) string {
	switch operationID {
	case OpRoughFace:
		return "face-rough"
	case OpFinishFace, OpFinishSlot:
		return "finish"
	case OpPartialSlot, OpFullSlot, OpTrochoidalSlot:
		return "slot"
	default:
		return "other"
	}
}

// DefaultLimits returns the conservative operation-group defaults used
// when a (material, tool type, operation) cell is absent from the
// matrix (§4.3 "Fallback defaults").
func DefaultLimits(operationID string) Limits {
	switch operationGroup(operationID) {
	case "face-rough":
		return Limits{AeFactorMax: ptr(0.7), ApFixed: ptr(1.0), VfMaxFactor: ptr(1.0), MRRMax: ptr(200)}
	case "finish":
		return Limits{AeFactorMax: ptr(0.2), ApFixed: ptr(0.2), VfMaxFactor: ptr(1.0), MRRMax: ptr(50)}
	case "slot":
		return Limits{AeFactorMax: ptr(0.3), ApFactorMax: ptr(0.5), ApMinFixed: ptr(0.5), VfMaxFactor: ptr(1.0), MRRMax: ptr(200)}
	default:
		return Limits{AeFactorMax: ptr(0.2), ApFactorMax: ptr(0.3), VfMaxFactor: ptr(0.8), MRRMax: ptr(100)}
	}
}

// Resolve returns the L/D-adjusted limits for a combination, falling
// back to DefaultLimits when the cell is undefined. The second return
// value reports whether the fallback path was taken, so the caller
// (the validator) can append the required diagnostic.
func (m LimitMatrix) Resolve(material string, toolType ToolType, operation string, ld float64) (Limits, bool) {
	l, ok := m.Lookup(material, toolType, operation)
	usedDefaults := false
	if !ok {
		l = DefaultLimits(operation)
		usedDefaults = true
	}
	return l.applyLDReduction(ld), usedDefaults
}
