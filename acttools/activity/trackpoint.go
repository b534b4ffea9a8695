package activity

import (
	"act2gpx/acttools/act"
	"act2gpx/acttools/convert"
	"errors"
	"strconv"
	"strings"
)

var errMissing = errors.New("missing value")

// TrackPoint holds the fields of an ACT trackpoint. Optional fields are nil when
// absent from the file or disabled by the options.
type TrackPoint struct {
	Latitude     *float64
	Longitude    *float64
	Altitude     *int
	Speed        *float64
	HeartRate    *int
	Cadence      *int
	Power        *int
	Temperature  *float64 // Celsius
	IntervalTime *float64 // time since the previous trackpoint, in Options.IntervalUnit
}

// HasPosition returns true if both latitude and longitude are set
func (tp TrackPoint) HasPosition() bool {
	return tp.Latitude != nil && tp.Longitude != nil
}

// Extract reads the fields of a trackpoint element. index is only used to
// give context to errors.
func Extract(node *act.Node, index int, opts Options) (TrackPoint, error) {
	var tp TrackPoint
	var err error

	for _, n := range node.Children {
		v := n.Value()
		switch strings.ToLower(n.Name) {
		case "latitude":
			tp.Latitude, err = decimal(v)
		case "longitude":
			tp.Longitude, err = decimal(v)
		case "intervaltime":
			tp.IntervalTime, err = decimal(v)
		case "speed":
			tp.Speed, err = decimal(v)
		case "altitude":
			if opts.NoAltitude {
				zero := 0
				tp.Altitude = &zero
			} else if opts.BarometricAltitude {
				tp.Altitude, err = integer(v)
			}
		case "heartrate":
			tp.HeartRate, err = integer(v)
		case "cadence":
			tp.Cadence, err = integer(v)
		case "power":
			tp.Power, err = integer(v)
		case "temperature":
			tp.Temperature, err = decimal(v)
			if tp.Temperature != nil {
				*tp.Temperature = convert.KelvinToCelsius(*tp.Temperature)
			}
		}

		if err != nil {
			return tp, &FieldError{Index: index, Field: strings.ToLower(n.Name), Value: v, Err: err}
		}
	}

	if tp.IntervalTime == nil {
		return tp, &FieldError{Index: index, Field: "intervaltime", Err: errMissing}
	}

	return tp, nil
}

// decimal returns nil for empty values
func decimal(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := convert.ParseDecimal(s)
	if err != nil {
		return nil, unwrapNum(err)
	}
	return &f, nil
}

func integer(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, unwrapNum(err)
	}
	return &i, nil
}

func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}
	return err
}
