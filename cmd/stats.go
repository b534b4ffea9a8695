package main

import (
	"context"
	"flag"
	"fmt"

	"act2gpx/acttools/convert"
	"act2gpx/acttools/gpxutils"
	"act2gpx/acttools/terminal"
	"act2gpx/acttools/track"

	"github.com/google/subcommands"
)

type statsCmd struct {
	imperial bool
}

const dateTimeFormat = "Jan 2, 2006 15:04:05"

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "Print statistics of a GPX track." }
func (*statsCmd) Usage() string {
	return `stats [-imperial] <file.gpx>
	Print duration, distance and elevation statistics of a GPX track.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.imperial, "imperial", false, "print distances in miles and elevations in feet")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}

	g, err := gpxutils.Load(f.Arg(0))
	if err != nil {
		terminal.Error(err, "Couldn't load GPX")
		return subcommands.ExitFailure
	}

	t := track.New(gpxutils.TrackPoints(g))
	s := t.Stats()

	for _, l := range c.summary(s, t.Bounds()) {
		terminal.Info("%s", l)
	}

	return subcommands.ExitSuccess
}

func (c *statsCmd) summary(s track.Stats, b track.Bounds) []string {
	d, h, m := convert.ToDaysHoursMin(s.Duration)

	distance := fmt.Sprintf("%.2f km", s.Distance/1000)
	elevation := func(meters float64) string { return convert.Ftoan(meters) + " m" }
	if c.imperial {
		distance = fmt.Sprintf("%.2f mi", convert.ToMiles(s.Distance))
		elevation = func(meters float64) string { return convert.Ftoan(convert.ToFeet(meters)) + " ft" }
	}

	return []string{
		fmt.Sprintf("Points:         %d", s.Points),
		fmt.Sprintf("Start:          %s", s.Start.Format(dateTimeFormat)),
		fmt.Sprintf("Duration:       %dd %02dh %02dm", d, h, m),
		fmt.Sprintf("Distance:       %s", distance),
		fmt.Sprintf("Elevation gain: %s", elevation(s.ElevationGain)),
		fmt.Sprintf("Elevation loss: %s", elevation(s.ElevationLoss)),
		fmt.Sprintf("Start/end:      %s / %s", elevation(s.StartElevation), elevation(s.EndElevation)),
		fmt.Sprintf("Bounds:         %s", b),
	}
}
