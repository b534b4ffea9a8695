package activity

import "time"

// Options controls how an activity is converted. Options are read-only during
// a conversion.
type Options struct {
	NoAltitude         bool // force elevation to 0
	BarometricAltitude bool // use the altitude field, elevation is omitted otherwise
	NoExtensions       bool // omit the whole extension block
	NoPower            bool
	NoTemperature      bool

	// IntervalUnit is the unit of the intervaltime field, milliseconds when zero.
	IntervalUnit time.Duration

	// Progress, when set, is called after each trackpoint with the number of
	// trackpoints parsed so far.
	Progress func(parsed int)
}

func (o Options) intervalUnit() time.Duration {
	if o.IntervalUnit <= 0 {
		return time.Millisecond
	}
	return o.IntervalUnit
}
