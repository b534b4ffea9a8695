package gpxutils

import (
	"errors"
	"fmt"

	"github.com/tkrajina/gpxgo/gpx"
)

// ErrNoPoints is returned when a GPX file has no track point
var ErrNoPoints = errors.New("gpx has no track point")

// Load parses the GPX file at path and makes sure it has at least one track point
func Load(path string) (*gpx.GPX, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx '%s': %w", path, err)
	}

	if g.GetTrackPointsNo() == 0 {
		return nil, fmt.Errorf("'%s': %w", path, ErrNoPoints)
	}

	return g, nil
}

// TrackPoints returns the points of all the tracks and segments, in order
func TrackPoints(g *gpx.GPX) []gpx.GPXPoint {
	var pts []gpx.GPXPoint
	for _, t := range g.Tracks {
		for _, s := range t.Segments {
			pts = append(pts, s.Points...)
		}
	}
	return pts
}
