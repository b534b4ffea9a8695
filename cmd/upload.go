package main

import (
	"context"
	"flag"
	"fmt"

	"act2gpx/acttools/config"
	"act2gpx/acttools/gpxutils"
	"act2gpx/acttools/strava"
	"act2gpx/acttools/terminal"

	"github.com/google/subcommands"
)

type uploadCmd struct {
	name         string
	description  string
	activityType string
	private      bool
}

func (*uploadCmd) Name() string     { return "upload" }
func (*uploadCmd) Synopsis() string { return "Upload a GPX file to Strava." }
func (*uploadCmd) Usage() string {
	return `upload [-name <name>] [-type <type>] [-private] <file.gpx>
	Upload a GPX file to Strava as a new activity.
	STRAVA_CLIENT_ID and STRAVA_SECRET_ID must be set.
`
}

func (c *uploadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "activity name")
	f.StringVar(&c.description, "description", "", "activity description")
	f.StringVar(&c.activityType, "type", "", "activity type (Ride, Run, Hike...)")
	f.BoolVar(&c.private, "private", false, "make the activity private")
}

func (c *uploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Print(c.Usage())
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		terminal.Error(err, "Failed to load config")
		return subcommands.ExitFailure
	}

	if err := cfg.ValidateStrava(); err != nil {
		terminal.Error(err, "Missing Strava configuration")
		return subcommands.ExitFailure
	}

	g, err := gpxutils.Load(path)
	if err != nil {
		terminal.Error(err, "Refusing to upload '%s'", path)
		return subcommands.ExitFailure
	}

	s := strava.NewClient(cfg.HTTPPort, cfg.StravaClientID, cfg.StravaSecretID, cfg.TokenFile)

	// get auth token to query Strava
	if err := s.RetrieveAuthToken(ctx); err != nil {
		terminal.Error(err, "Something went wrong while trying to fetch auth token")
		return subcommands.ExitFailure
	}

	o := terminal.NewOperation("Uploading '%s' to Strava (%d points)", path, g.GetTrackPointsNo())
	activityID, err := s.Upload(ctx, path, strava.UploadParams{
		Name:         c.name,
		Description:  c.description,
		ActivityType: c.activityType,
		Private:      c.private,
	})
	if err != nil {
		o.Error(err, "Failed to upload '%s' to Strava", path)
		return subcommands.ExitFailure
	}
	o.Success("Uploaded to %s", strava.GetActivityLink(activityID))

	return subcommands.ExitSuccess
}
