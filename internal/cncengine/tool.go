package cncengine

// LengthClass buckets a tool's L/D slenderness.
type LengthClass string

const (
	LengthShort    LengthClass = "SHORT"
	LengthNormal   LengthClass = "NORMAL"
	LengthLong     LengthClass = "LONG"
	LengthVeryLong LengthClass = "VERY_LONG"
)

// ToolType is the tool-shape key used by the limit matrix (C3).
type ToolType string

const (
	ToolEndMill     ToolType = "end_mill"
	ToolBallEndMill ToolType = "ball_end_mill"
	ToolDrill       ToolType = "drill"
	ToolThreadMill  ToolType = "thread_mill"
)

// Geometry is the physical description of a tool's cutting envelope.
type Geometry struct {
	DC_mm            float64 // cutting diameter
	LCF_mm           float64 // length of cut (usable flute length)
	OAL_mm           float64 // overall length, optional (0 if unset)
	ShankDiameter_mm float64 // optional, 0 if unset
	NOF              int     // number of flutes, 1-12

	// Optional, operation-class dependent.
	CornerRadius_mm float64 // > 0 when set; radius-mill geometry
	IncludedAngle_deg float64 // > 0 when set; V-groove/chamfer geometry
}

// HasCornerRadius reports whether a corner radius was supplied.
func (g Geometry) HasCornerRadius() bool { return g.CornerRadius_mm > 0 }

// HasIncludedAngle reports whether an included angle was supplied.
func (g Geometry) HasIncludedAngle() bool { return g.IncludedAngle_deg > 0 }

// LDRatio returns LCF / DC, the overhang slenderness ratio.
func (g Geometry) LDRatio() float64 {
	return g.LCF_mm / g.DC_mm
}

// LengthClass classifies the tool by its L/D ratio.
func (g Geometry) LengthClass() LengthClass {
	ld := g.LDRatio()
	switch {
	case ld < 1.0:
		return LengthShort
	case ld < 4.0:
		return LengthNormal
	case ld < 6.0:
		return LengthLong
	default:
		return LengthVeryLong
	}
}

// Validate checks the tool geometry invariants from the data model.
func (g Geometry) Validate() error {
	if g.DC_mm <= 0 {
		return &GeometryError{Field: "DC_mm", Reason: "must be > 0"}
	}
	if g.LCF_mm <= 0 {
		return &GeometryError{Field: "LCF_mm", Reason: "must be > 0"}
	}
	if g.NOF < 1 || g.NOF > 12 {
		return &GeometryError{Field: "NOF", Reason: "must be between 1 and 12"}
	}
	return nil
}

// Tool is a stable identity plus a geometry block.
type Tool struct {
	ID          string
	Description string
	BodyMaterial string // e.g. "carbide", "HSS" — informational only
	Geometry    Geometry
}

// InferredType derives the limit-matrix tool_type from the id of the
// operation being run; the tool's geometry is not consulted. It
// supplements the fields the
// distilled spec's Tool record does not itself carry. See
// SPEC_FULL.md "Supplemented features" #1.
func (t Tool) InferredType(op Operation) ToolType {
	switch op.ID {
	case OpBall3D:
		return ToolBallEndMill
	case OpDrilling:
		return ToolDrill
	case OpThreading:
		return ToolThreadMill
	default:
		return ToolEndMill
	}
}
