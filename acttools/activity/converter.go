package activity

import (
	"act2gpx/acttools/act"
	"act2gpx/acttools/convert"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Creator is the GPX creator. Strava only trusts the elevation of files
// recorded by a device it knows to have a barometric altimeter.
const Creator = "Garmin Edge 800"

// TimeFormat is the layout of trackpoint timestamps
const TimeFormat = "2006-01-02T15:04:05Z"

const gpxHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no" ?>

<gpx version="1.1"
creator="` + Creator + `"
xmlns="http://www.topografix.com/GPX/1/1"
xmlns:gpxtpx="http://www.garmin.com/xmlschemas/TrackPointExtension/v1"
xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">

  <metadata>
    <link href="https://github.com/kgkilo/act2gpx">
      <text>Act2GPX</text>
    </link>
  </metadata>

  <trk>
    <trkseg>

`

const gpxFooter = `
    </trkseg>
  </trk>
</gpx>

`

// Converter turns one ACT document into a GPX document. A Converter holds the
// running clock of the activity and must not be shared between conversions.
type Converter struct {
	opts Options

	clock   time.Time
	started bool
	parsed  int
	written int
}

// NewConverter creates a converter for a single conversion
func NewConverter(opts Options) *Converter {
	return &Converter{opts: opts}
}

// Convert converts doc to GPX with the given options
func Convert(doc *act.Document, opts Options) ([]byte, error) {
	return NewConverter(opts).Convert(doc)
}

// Convert converts doc to GPX. Nothing is returned on error.
func (c *Converter) Convert(doc *act.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(gpxHeader)

	for _, gb := range doc.Find("globalsat_gb580") {
		for _, n := range gb.Children {
			if !c.started && n.Is("trackmaster") {
				if err := c.start(n); err != nil {
					return nil, err
				}
			}

			if n.Is("trackpoints") {
				if err := c.trackpoint(&buf, n); err != nil {
					return nil, err
				}
			}
		}
	}

	buf.WriteString(gpxFooter)

	return buf.Bytes(), nil
}

// Parsed returns the number of trackpoints read so far
func (c *Converter) Parsed() int {
	return c.parsed
}

// Written returns the number of trackpoints emitted so far
func (c *Converter) Written() int {
	return c.written
}

// start seeds the clock from the trackmaster name and start time
func (c *Converter) start(trackMaster *act.Node) error {
	var name, start string
	for _, n := range trackMaster.Children {
		if n.Is("trackname") {
			name = n.Value()
		}
		if n.Is("starttime") {
			start = n.Value()
		}
	}

	t, err := ParseStartTime(name, start)
	if err != nil {
		return err
	}

	c.clock = t
	c.started = true
	return nil
}

func (c *Converter) trackpoint(buf *bytes.Buffer, n *act.Node) error {
	index := c.parsed
	c.parsed++
	if c.opts.Progress != nil {
		c.opts.Progress(c.parsed)
	}

	if !c.started {
		return fmt.Errorf("trackpoint %d: %w", index, ErrMissingTrackMaster)
	}

	tp, err := Extract(n, index, c.opts)
	if err != nil {
		return err
	}

	// the clock moves even for points that are not written
	c.clock = c.clock.Add(time.Duration(*tp.IntervalTime * float64(c.opts.intervalUnit())))

	if !tp.HasPosition() {
		return nil
	}

	writeTrackPoint(buf, tp, c.clock, c.opts)
	c.written++

	return nil
}

func writeTrackPoint(buf *bytes.Buffer, tp TrackPoint, t time.Time, opts Options) {
	fmt.Fprintf(buf, "\n<trkpt lat=\"%s\" lon=\"%s\">", convert.FormatFloat(*tp.Latitude), convert.FormatFloat(*tp.Longitude))
	if tp.Altitude != nil {
		fmt.Fprintf(buf, "<ele>%d</ele>", *tp.Altitude)
	}
	fmt.Fprintf(buf, "<time>%s</time>", t.Format(TimeFormat))
	if tp.Speed != nil {
		fmt.Fprintf(buf, "<speed>%s</speed>", convert.FormatFloat(*tp.Speed))
	}
	fmt.Fprintf(buf, "\n    %s\n</trkpt>\n\n", Extension(tp, opts))
}

// ParseStartTime parses the start time of an activity. The name of GB-580
// tracks is their start date, so name and start are parsed together first.
// Then name and start are tried on their own, as either one may hold the whole
// date and time.
func ParseStartTime(name, start string) (time.Time, error) {
	combined := strings.TrimSpace(name + " " + start)
	if combined == "" {
		return time.Time{}, fmt.Errorf("%w: empty trackname and starttime", ErrInvalidStartTime)
	}

	t, err := dateparse.ParseIn(combined, time.UTC)
	if err == nil {
		return t, nil
	}

	for _, s := range []string{name, start} {
		if s == "" || s == combined {
			continue
		}
		if t, err2 := dateparse.ParseIn(s, time.UTC); err2 == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q: %s", ErrInvalidStartTime, combined, err)
}
