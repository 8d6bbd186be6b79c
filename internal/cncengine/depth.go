package cncengine

import "math"

// depthFixedFaceRough is the material-keyed fixed ap for rule 1 of the
// decision tree (§4.2). Materials absent from the map fall back to 1.0.
var depthFixedFaceRough = map[string]float64{
	"softwood":   1.5,
	"hardwood":   1.5,
	"aluminium":  1.0,
	"plastic":    1.0,
	"brass":      1.0,
	"copper":     1.0,
	"steel_mild": 0.8,
	"stainless":  0.8,
}

// depthResult is the (ap, axial-reference-used) pair every arm of the
// decision tree returns, matching spec.md §9's "each arm returns a
// pair; clamping happens once at the tail" guidance.
type depthResult struct {
	Ap_mm      float64
	Reference  AxialReference
	Unknown    bool // true only for the fallback arm, to emit a warning
}

// resolveDepth implements the axial-depth-of-cut decision tree (C5,
// §4.2). It is a single switch on operation id — no chained
// conditionals, no inheritance — with category-specific helper arms.
func resolveDepth(tool Tool, material Material, operation Operation, qualityApMul float64) depthResult {
	g := tool.Geometry
	var r depthResult

	switch operation.ID {
	case OpRoughFace:
		// Rule 1: face, roughing — material-keyed fixed value.
		ap, ok := depthFixedFaceRough[material.ID]
		if !ok {
			ap = 1.0
		}
		r = depthResult{Ap_mm: ap, Reference: RefDC}

	case OpFinishFace:
		// Rule 2: face, finishing — always 0.2mm.
		r = depthResult{Ap_mm: 0.2, Reference: RefDC}

	case OpFinishSlot:
		// Rule 3: slot, finishing — always 0.2mm.
		r = depthResult{Ap_mm: 0.2, Reference: RefLCF}

	case OpPartialSlot, OpFullSlot, OpTrochoidalSlot:
		// Rule 4: slot (partial/full/trochoidal).
		var base float64
		var ref AxialReference
		if material.Category.IsWood() {
			base = 1.5 * g.DC_mm
			ref = RefDC
		} else {
			base = g.LCF_mm * material.ApMaxFactor
			ref = RefLCF
		}

		var ap float64
		switch operation.ID {
		case OpFullSlot:
			ap = base * 0.6
		case OpTrochoidalSlot:
			ap = base * 1.2
		default: // OpPartialSlot
			ap = base * 1.0
		}

		if material.Category.IsFerrous() {
			ap = math.Max(ap, material.ApMin_mm)
		}
		r = depthResult{Ap_mm: ap, Reference: ref}

	case OpBall3D:
		// Rule 5: ball-end 3-D — never exceed the ball radius.
		r = depthResult{Ap_mm: math.Min(0.5, g.DC_mm/2), Reference: RefDynamic}

	case OpRadiusContour:
		// Rule 6: radius contour.
		if g.HasCornerRadius() {
			r = depthResult{Ap_mm: math.Min(0.2, 2*g.CornerRadius_mm), Reference: RefDynamic}
		} else {
			r = depthResult{Ap_mm: 0.2, Reference: RefDynamic}
		}

	case OpVGroove, OpChamferContour:
		// Rule 7: V-groove / chamfer.
		if g.HasIncludedAngle() {
			maxDepth := g.DC_mm / (2 * math.Tan(degToRad(g.IncludedAngle_deg/2)))
			r = depthResult{Ap_mm: math.Min(0.3, maxDepth), Reference: RefDynamic}
		} else {
			r = depthResult{Ap_mm: 0.3, Reference: RefDynamic}
		}

	case OpDrilling:
		// Rule 8: drilling — full cutting length.
		r = depthResult{Ap_mm: g.LCF_mm, Reference: RefLCF}

	case OpThreading:
		// Rule 9: threading — placeholder; true depth is pitch-derived
		// and not specified (spec.md §9 Open Question 1).
		r = depthResult{Ap_mm: 1.0, Reference: RefLCF}

	default:
		// Rule 10: unknown operation.
		r = depthResult{Ap_mm: 0.5, Reference: RefDynamic, Unknown: true}
	}

	// Surface-quality ap multiplier, applied once at the tail.
	r.Ap_mm *= qualityApMul

	// Final clamps: never exceed LCF, never below the absolute minimum.
	r.Ap_mm = math.Min(r.Ap_mm, g.LCF_mm)
	r.Ap_mm = math.Max(r.Ap_mm, 0.1)

	return r
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
