package cncengine

// Coating is the tool's surface treatment. Factors multiply vc in
// calculation step 2.
type Coating string

const (
	CoatingNone    Coating = "none"
	CoatingTiN     Coating = "TiN"
	CoatingTiAlN   Coating = "TiAlN"
	CoatingAlTiN   Coating = "AlTiN"
	CoatingDiamond Coating = "diamond"
	CoatingCarbide Coating = "carbide"
)

// coatingFactors is the enumerated set from the data model (§3).
var coatingFactors = map[Coating]float64{
	CoatingNone:    1.00,
	CoatingTiN:     1.40,
	CoatingTiAlN:   1.60,
	CoatingAlTiN:   1.80,
	CoatingDiamond: 2.20,
	CoatingCarbide: 1.50,
}

// Factor returns the vc multiplier for a coating. Unknown coatings
// return (0, false).
func (c Coating) Factor() (float64, bool) {
	f, ok := coatingFactors[c]
	return f, ok
}

// ForbiddenOnFerrous reports whether this coating may never be paired
// with a ferrous-metal material (step 2's Diamond-on-ferrous check).
func (c Coating) ForbiddenOnFerrous() bool {
	return c == CoatingDiamond
}

// Coatings lists all coatings with their factors, in the canonical
// order used by §6's constant-table surface.
func Coatings() []struct {
	Coating Coating
	Factor  float64
} {
	order := []Coating{CoatingNone, CoatingTiN, CoatingTiAlN, CoatingAlTiN, CoatingCarbide, CoatingDiamond}
	out := make([]struct {
		Coating Coating
		Factor  float64
	}, 0, len(order))
	for _, c := range order {
		f, _ := c.Factor()
		out = append(out, struct {
			Coating Coating
			Factor  float64
		}{c, f})
	}
	return out
}
