package track

import (
	"math"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tkrajina/gpxgo/gpx"
)

// Track represents a gps track made of a serie of points in a 3D dimension
// in order to get the most accurate distances on the Earth.
type Track struct {
	polyline *s2.Polyline
	segment  gpx.GPXTrackSegment
}

// Stats track statistics
type Stats struct {
	Points         int
	Start          time.Time
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
	Distance       float64 // 3D, in meters
	Distance2D     float64 // on the Earth surface, in meters
}

const earthRadius = 6378100
const elevationChangeThreshold = 18

// New Create a track from the given gpx points
func New(pts []gpx.GPXPoint) *Track {
	pPts := make([]s2.LatLng, len(pts))
	for i, p := range pts {
		pPts[i] = s2.LatLng{
			Lat: s1.Angle(p.Latitude) * s1.Degree,
			Lng: s1.Angle(p.Longitude) * s1.Degree,
		}
	}

	return &Track{
		polyline: s2.PolylineFromLatLngs(pPts),
		segment:  gpx.GPXTrackSegment{Points: pts},
	}
}

// Len returns the number of points of the track
func (t *Track) Len() int {
	return len(t.segment.Points)
}

// Stats retrieves statistics from the track
func (t *Track) Stats() Stats {
	if t.Len() == 0 {
		return Stats{}
	}

	pts := t.segment.Points
	tb := t.segment.TimeBounds()
	gain, loss := t.elevationGainLoss(elevationChangeThreshold)

	return Stats{
		Points:         len(pts),
		Start:          tb.StartTime,
		Duration:       tb.EndTime.Sub(tb.StartTime),
		ElevationGain:  gain,
		ElevationLoss:  loss,
		StartElevation: pts[0].Elevation.Value(),
		EndElevation:   pts[len(pts)-1].Elevation.Value(),
		Distance:       t.segment.Length3D(),
		Distance2D:     t.polyline.Length().Radians() * earthRadius,
	}
}

// Bounds returns the boundaries of the track
func (t *Track) Bounds() Bounds {
	b := t.segment.Bounds()
	return Bounds{
		MinLat: b.MinLatitude,
		MinLng: b.MinLongitude,
		MaxLat: b.MaxLatitude,
		MaxLng: b.MaxLongitude,
	}
}

func (t *Track) elevationGainLoss(threshold float64) (float64, float64) {
	elevations := t.segment.Elevations()
	selectedElevations := []float64{}
	i := 0
	for _, e := range elevations {
		if e.NotNull() {
			if i == 0 || math.Abs(e.Value()-selectedElevations[i-1]) > threshold {
				selectedElevations = append(selectedElevations, e.Value())
				i++
			}
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}
