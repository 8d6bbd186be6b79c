package cncengine

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Engine holds the immutable, shared-readable tables (C1-C3) and
// exposes the one principal operation from §6: Calculate. Tables are
// loaded once at construction (see config.LoadEmbedded and
// config.LoadYAMLDir) and never mutated
// afterward, so any number of Calculate calls may proceed concurrently
// without synchronization (§5).
type Engine struct {
	materials MaterialTable
	operations OperationTable
	limits    LimitMatrix
}

// NewEngine builds an engine from already-loaded, immutable tables.
// Parsing a configuration file into these tables is the caller's
// responsibility (see internal/cncengine/config) — the engine itself
// never touches disk.
func NewEngine(materials MaterialTable, operations OperationTable, limits LimitMatrix) *Engine {
	return &Engine{materials: materials, operations: operations, limits: limits}
}

// Materials returns the material listing for UI/selection consumers (§6).
func (e *Engine) Materials() []Material { return e.materials.List() }

// Operations returns the operation listing for UI/selection consumers (§6).
func (e *Engine) Operations() []Operation { return e.operations.List() }

// OperationsByCategory groups Operations() by category (§6).
func (e *Engine) OperationsByCategory() map[OperationCategory][]Operation {
	return e.operations.ListByCategory()
}

// Calculate is the engine's one principal operation (§6): it runs the
// twelve-step pipeline (C6), invoking the depth resolver (C5), the MRR
// and auxiliary-feed models (C4, C8), then the multi-level validator
// (C7), and returns the complete Preset alongside its ValidationResult.
//
// Hard failures (bad identifiers, forbidden coatings, missing pitch,
// invalid geometry) are returned as a wrapped sentinel error and no
// Preset is produced. A successful return always carries a complete,
// finite Preset — the calculation never refuses to run because the
// result would be unsafe; that judgment belongs to ValidationResult,
// not to Calculate's error return (§7).
func (e *Engine) Calculate(tool Tool, materialID, operationID string, opts Options) (Preset, ValidationResult, error) {
	opts = opts.normalized()

	// ── Step 1: resolve inputs ──────────────────────────────────────
	if err := tool.Geometry.Validate(); err != nil {
		return Preset{}, ValidationResult{}, err
	}
	material, ok := e.materials.Lookup(materialID)
	if !ok {
		return Preset{}, ValidationResult{}, fmt.Errorf("material %q: %w", materialID, ErrMaterialNotFound)
	}
	operation, ok := e.operations.Lookup(operationID)
	if !ok {
		return Preset{}, ValidationResult{}, fmt.Errorf("operation %q: %w", operationID, ErrOperationNotFound)
	}
	if operation.ID == OpThreading && opts.ThreadPitch_mm <= 0 {
		return Preset{}, ValidationResult{}, fmt.Errorf("operation %q: %w", operationID, ErrMissingThreadPitch)
	}
	coatingFactor, ok := opts.Coating.Factor()
	if !ok {
		return Preset{}, ValidationResult{}, fmt.Errorf("coating %q: unrecognised: %w", opts.Coating, ErrInvalidCoating)
	}
	if opts.Coating.ForbiddenOnFerrous() && material.Category.IsFerrous() {
		return Preset{}, ValidationResult{}, &CoatingError{Reason: "diamond coating is non-ferrous only"}
	}

	g := tool.Geometry
	ld := g.LDRatio()
	quality := opts.SurfaceQuality.Multipliers()
	isFinishOp := operation.ID == OpFinishSlot || operation.ID == OpFinishFace

	// ── Step 2: cutting speed vc ─────────────────────────────────────
	vc := material.VcBase_m_min * coatingFactor * operation.VcFactor * material.DryMachiningFactor
	if ld > 3.0 {
		vc *= math.Max(1.0-0.05*(ld-3.0), 0.7)
	}
	if operation.ID == OpThreading {
		if f, ok := operation.MaterialVcFactors[material.ID]; ok {
			vc *= f
		}
	}
	if isFinishOp && material.HasVcFinishFactor() {
		vc *= material.VcFinishFactor
	}

	// ── Step 3: spindle rotation n ───────────────────────────────────
	n := math.Round((vc * 1000) / (math.Pi * g.DC_mm))
	if operation.ID == OpBall3D {
		n *= operation.EffectiveRotationBoost()
	}
	rpmMin, rpmMax := opts.SpindleRange()
	n = clamp(n, rpmMin, rpmMax)

	// ── Step 4: chip load fz ──────────────────────────────────────────
	var fz float64
	switch operation.ID {
	case OpDrilling:
		fz = 0.08
		if v, ok := operation.MaterialFz[material.ID]; ok {
			fz = v
		}
	case OpThreading:
		fz = 0
	default:
		fz = material.FzK * math.Sqrt(g.DC_mm)
		fz = clamp(fz, 0.01, 0.5)
		fz *= operation.FzFactor
		if opts.Coolant.IsDry() {
			fz *= material.DryMachiningFactor
		}
		fz *= fzLDCorrection(ld)
		if isFinishOp && material.HasFzFinishFactor() {
			fz *= material.FzFinishFactor
		}
	}

	// ── Step 5: radial engagement ae ─────────────────────────────────
	ae := roundTo(g.DC_mm*operation.AeFactor*quality.Ae, 3)

	// ── Step 6: axial depth ap ───────────────────────────────────────
	depth := resolveDepth(tool, material, operation, quality.Ap)

	// ── Step 7: feed rate vf ──────────────────────────────────────────
	var vf float64
	switch operation.ID {
	case OpDrilling:
		vf = n * fz
	case OpThreading:
		vf = n * opts.ThreadPitch_mm
	default:
		vf = n * fz * float64(g.NOF)
	}
	vf *= quality.Feed

	// ── Step 8: auxiliary feeds ───────────────────────────────────────
	aux := resolveAuxiliaryFeeds(operation, material, tool, vf)

	// ── Step 9: MRR and power ─────────────────────────────────────────
	mrr := mrrCm3Min(ae, depth.Ap_mm, vf)
	power := powerKW(mrr, material.Kc_N_mm2)
	torque := torqueNm(power, n)

	// ── Step 10: chip temperature ─────────────────────────────────────
	vcRatio := vc / material.VcBase_m_min
	fzRatio := fz / 0.1
	chipTemp := 0.4 * material.MaxTemp_C * (1 + 0.5*vcRatio) * (1 + 0.1*fzRatio) * material.ThermalFactor
	chipTemp *= opts.Coolant.TemperatureReduction()
	chipTemp = roundTo(chipTemp, 1)

	// ── Step 11: chip-formation class ─────────────────────────────────
	formation := classifyChipFormation(material.Category, fz)

	preset := Preset{
		Name:          generatePresetName(material, operation),
		Material:      material.ID,
		Operation:     operation.ID,
		VcBase_m_min:  material.VcBase_m_min,
		CoatingFactor: coatingFactor,
		VcFinal_m_min: vc,
		N_rpm:         n,
		FzBase_mm:     material.FzK * math.Sqrt(g.DC_mm),
		DryFactor:     material.DryMachiningFactor,
		FzFinal_mm:    fz,
		Vf_mm_min:     vf,
		Aux:           aux,
		Ae_mm:         ae,
		Ap_mm:         depth.Ap_mm,
		AxialReferenceUsed: depth.Reference,
		MRR_cm3_min:   mrr,
		Power_kW:      power,
		Torque_Nm:     torque,
		ChipTemp_C:    chipTemp,
		ChipFormation: formation,
		LDRatio:       ld,
		LengthClass:   g.LengthClass(),
	}

	// ── Step 12: stability warnings ───────────────────────────────────
	if depth.Unknown {
		preset.StabilityWarnings = append(preset.StabilityWarnings, StabilityWarning{
			Code: "unknown-operation", Message: "operation not recognised by the depth resolver; used the conservative 0.5mm fallback",
		})
	}
	switch {
	case ld > 6.0:
		preset.StabilityWarnings = append(preset.StabilityWarnings, StabilityWarning{
			Code: "very-long", Message: "L/D > 6.0: consider reducing ap by 30-50%",
		})
	case ld > 4.0:
		preset.StabilityWarnings = append(preset.StabilityWarnings, StabilityWarning{
			Code: "long", Message: "L/D > 4.0: consider reducing ap by 20%",
		})
	}
	if depth.Ap_mm > 0.75*g.DC_mm {
		preset.StabilityWarnings = append(preset.StabilityWarnings, StabilityWarning{
			Code: "aggressive-depth", Message: "ap exceeds 75% of tool diameter",
		})
	}

	// ── Validator (C7) ────────────────────────────────────────────────
	toolType := tool.InferredType(operation)
	limits, usedDefaults := e.limits.Resolve(material.ID, toolType, operation.ID, ld)
	validation := validate(tool, material, operation, preset, limits, usedDefaults, opts)

	return preset, validation, nil
}

// CalculateBatch runs Calculate concurrently for every request in reqs
// and returns the results in the same order. Since the engine's tables
// are immutable and Calculate holds no shared mutable state (§5), the
// calculations require no synchronization beyond errgroup's result
// collection.
type BatchRequest struct {
	Tool        Tool
	MaterialID  string
	OperationID string
	Options     Options
}

type BatchResult struct {
	Preset     Preset
	Validation ValidationResult
	Err        error
}

func (e *Engine) CalculateBatch(reqs []BatchRequest) []BatchResult {
	results := make([]BatchResult, len(reqs))
	var g errgroup.Group
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			preset, validation, err := e.Calculate(req.Tool, req.MaterialID, req.OperationID, req.Options)
			results[i] = BatchResult{Preset: preset, Validation: validation, Err: err}
			return nil
		})
	}
	_ = g.Wait() // individual errors are carried per-result, never aggregated away
	return results
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTo(v float64, decimals int) float64 {
	mul := math.Pow(10, float64(decimals))
	return math.Round(v*mul) / mul
}

// fzLDCorrection implements step 4's L/D correction table: 1.0 / 0.9 /
// 0.8 / 0.7 at the 3 / 4 / 5 thresholds.
func fzLDCorrection(ld float64) float64 {
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

// classifyChipFormation implements step 11's lookup on (category, fz).
func classifyChipFormation(category MaterialCategory, fz float64) ChipFormation {
	switch category {
	case CategoryWood:
		if fz < 0.05 {
			return ChipDust
		}
		return ChipSegmented
	case CategoryPlastic:
		return ChipContinuous
	default: // metal and ferrous-metal
		switch {
		case fz < 0.05:
			return ChipDiscontinuous
		case fz < 0.15:
			return ChipSegmented
		default:
			return ChipContinuous
		}
	}
}

// generatePresetName builds the deterministic "{Abbr}_{Operation}"
// label (SPEC_FULL.md supplemented feature #2).
var operationShortNames = map[string]string{
	OpRoughFace:      "Face_Rough",
	OpFinishFace:     "Face_Finish",
	OpPartialSlot:    "Slot_Partial",
	OpFullSlot:       "Slot_Full",
	OpTrochoidalSlot: "Slot_Trochoidal",
	OpFinishSlot:     "Slot_Finish",
	OpRadiusContour:  "Contour_Radius",
	OpChamferContour: "Contour_Chamfer",
	OpBall3D:         "3D_Ball",
	OpDrilling:       "Drill",
	OpVGroove:        "Engrave",
	OpThreading:      "Thread",
}

func generatePresetName(material Material, operation Operation) string {
	name, ok := operationShortNames[operation.ID]
	if !ok {
		name = operation.ID
	}
	abbr := material.Abbreviation
	if abbr == "" {
		abbr = material.ID
	}
	return fmt.Sprintf("%s_%s", abbr, name)
}
