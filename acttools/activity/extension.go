package activity

import (
	"act2gpx/acttools/convert"
	"strconv"
	"strings"
)

// Extension builds the gpxtpx:TrackPointExtension block of a trackpoint.
// It returns an empty string when the extensions are disabled or when the
// trackpoint has no channel to report.
func Extension(tp TrackPoint, opts Options) string {
	if opts.NoExtensions {
		return ""
	}

	// heart rate always owns the first line, even when absent
	hr := ""
	if tp.HeartRate != nil {
		hr = "<gpxtpx:hr>" + strconv.Itoa(*tp.HeartRate) + "</gpxtpx:hr>"
	}

	var channels []string
	if tp.Temperature != nil && !opts.NoTemperature {
		channels = append(channels, "<gpxtpx:atemp>"+convert.FormatFloat(*tp.Temperature)+"</gpxtpx:atemp>")
	}
	if tp.Power != nil && !opts.NoPower {
		channels = append(channels, "<gpxtpx:power>"+strconv.Itoa(*tp.Power)+"</gpxtpx:power>")
	}
	if tp.Cadence != nil {
		channels = append(channels, "<gpxtpx:cad>"+strconv.Itoa(*tp.Cadence)+"</gpxtpx:cad>")
	}

	if hr == "" && len(channels) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<extensions>\n        <gpxtpx:TrackPointExtension>\n            ")
	sb.WriteString(hr)
	for _, c := range channels {
		sb.WriteString("\n            ")
		sb.WriteString(c)
	}
	sb.WriteString("\n        </gpxtpx:TrackPointExtension>\n    </extensions>")

	return sb.String()
}
