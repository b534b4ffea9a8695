package activity_test

import (
	"act2gpx/acttools/activity"
	"testing"

	"github.com/stretchr/testify/require"
)

func full() activity.TrackPoint {
	hr, cad, pow := 150, 90, 200
	temp := 21.0
	return activity.TrackPoint{HeartRate: &hr, Cadence: &cad, Power: &pow, Temperature: &temp}
}

func TestExtension(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		opts     activity.Options
		contains []string
		missing  []string
	}{
		"all": {
			opts:     activity.Options{},
			contains: []string{"<gpxtpx:hr>150</gpxtpx:hr>", "<gpxtpx:atemp>21</gpxtpx:atemp>", "<gpxtpx:power>200</gpxtpx:power>", "<gpxtpx:cad>90</gpxtpx:cad>"},
		},
		"no_power": {
			opts:     activity.Options{NoPower: true},
			contains: []string{"<gpxtpx:hr>", "<gpxtpx:atemp>", "<gpxtpx:cad>"},
			missing:  []string{"<gpxtpx:power>"},
		},
		"no_temperature": {
			opts:     activity.Options{NoTemperature: true},
			contains: []string{"<gpxtpx:hr>", "<gpxtpx:power>", "<gpxtpx:cad>"},
			missing:  []string{"<gpxtpx:atemp>"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ext := activity.Extension(full(), tc.opts)
			for _, c := range tc.contains {
				require.Contains(ext, c)
			}
			for _, m := range tc.missing {
				require.NotContains(ext, m)
			}
		})
	}
}

func TestExtensionOrder(t *testing.T) {
	require := require.New(t)

	want := "<extensions>\n" +
		"        <gpxtpx:TrackPointExtension>\n" +
		"            <gpxtpx:hr>150</gpxtpx:hr>\n" +
		"            <gpxtpx:atemp>21</gpxtpx:atemp>\n" +
		"            <gpxtpx:power>200</gpxtpx:power>\n" +
		"            <gpxtpx:cad>90</gpxtpx:cad>\n" +
		"        </gpxtpx:TrackPointExtension>\n" +
		"    </extensions>"
	require.Equal(want, activity.Extension(full(), activity.Options{}))
}

func TestExtensionEmpty(t *testing.T) {
	require := require.New(t)

	require.Equal("", activity.Extension(full(), activity.Options{NoExtensions: true}))
	require.Equal("", activity.Extension(activity.TrackPoint{}, activity.Options{}))

	temp := 10.0
	pow := 100
	onlyFiltered := activity.TrackPoint{Temperature: &temp, Power: &pow}
	require.Equal("", activity.Extension(onlyFiltered, activity.Options{NoPower: true, NoTemperature: true}))
}

func TestExtensionWithoutHeartRate(t *testing.T) {
	require := require.New(t)

	cad := 80
	want := "<extensions>\n" +
		"        <gpxtpx:TrackPointExtension>\n" +
		"            \n" +
		"            <gpxtpx:cad>80</gpxtpx:cad>\n" +
		"        </gpxtpx:TrackPointExtension>\n" +
		"    </extensions>"
	require.Equal(want, activity.Extension(activity.TrackPoint{Cadence: &cad}, activity.Options{}))
}
