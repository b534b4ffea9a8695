package track

import "fmt"

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%.6f, %.6f] - [%.6f, %.6f]", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
}
