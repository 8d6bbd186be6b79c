package cncengine

// Reference spindle limits (§4.1 step 3). These are fixed machine
// constants: neither Options nor Engine provides a way to change them.
const (
	DefaultRPMMin = 2000
	DefaultRPMMax = 24000
)

const defaultSpindlePowerKW = 6.0

// Options carries the per-call knobs from §6: coating, surface
// quality, coolant mode, an optional thread pitch (required iff the
// operation is threading) and an optional spindle power override.
type Options struct {
	Coating        Coating
	SurfaceQuality SurfaceQuality
	Coolant        CoolantMode

	ThreadPitch_mm float64 // required iff operation is threading
	SpindlePower   float64 // kW, 0 means "use default 6.0"
}

// DefaultOptions returns the zero-value-safe defaults from §6: coating
// none, surface quality standard, coolant wet.
func DefaultOptions() Options {
	return Options{
		Coating:        CoatingNone,
		SurfaceQuality: QualityStandard,
		Coolant:        CoolantWet,
	}
}

// normalized fills in zero-valued fields with their defaults without
// mutating the caller's struct.
func (o Options) normalized() Options {
	if o.Coating == "" {
		o.Coating = CoatingNone
	}
	if o.SurfaceQuality == "" {
		o.SurfaceQuality = QualityStandard
	}
	if o.Coolant == "" {
		o.Coolant = CoolantWet
	}
	return o
}

// SpindlePowerKW returns the configured spindle power, defaulting to 6.0 kW.
func (o Options) SpindlePowerKW() float64 {
	if o.SpindlePower <= 0 {
		return defaultSpindlePowerKW
	}
	return o.SpindlePower
}

// SpindleRange returns the machine's [rpm_min, rpm_max] reference range.
func (o Options) SpindleRange() (float64, float64) {
	return DefaultRPMMin, DefaultRPMMax
}
