package cncengine

// CoolantMode is the fluid strategy influencing chip load and chip
// temperature.
type CoolantMode string

const (
	CoolantWet CoolantMode = "wet"
	CoolantDry CoolantMode = "dry"
	CoolantMQL CoolantMode = "mql"
)

// TemperatureReduction is the chip-temperature multiplier applied in
// step 10 (wet reduces 30%, mql 15%, dry is unreduced).
func (c CoolantMode) TemperatureReduction() float64 {
	switch c {
	case CoolantWet:
		return 0.70
	case CoolantMQL:
		return 0.85
	default:
		return 1.00
	}
}

// IsDry reports whether the dry-machining chip-load correction applies.
// The auxiliary-feed dry factor does not depend on it; see auxfeed.go.
func (c CoolantMode) IsDry() bool { return c == CoolantDry }
