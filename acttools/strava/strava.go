package strava

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	strava "github.com/strava/go.strava"
	"golang.org/x/oauth2"
)

// ErrUploadFailed is returned when Strava rejects an uploaded file
var ErrUploadFailed = errors.New("strava upload failed")

// ErrNoToken is returned when the client is used before RetrieveAuthToken
var ErrNoToken = errors.New("no auth token found, call RetrieveAuthToken() first")

const uploadPollInterval = 2 * time.Second
const uploadPollAttempts = 30

// Strava represents a Strava API client
type Strava struct {
	HTTPPort  int
	TokenFile string

	oauth *oauth2.Config
	token *oauth2.Token
}

// UploadParams describes the activity created from an uploaded file
type UploadParams struct {
	Name         string
	Description  string
	ActivityType string // Strava activity type, e.g. Ride or Run, guessed by Strava when empty
	Private      bool
}

// NewClient creates a new Strava API client
func NewClient(httpPort int, clientID int, clientSecret string, tokenFile string) *Strava {
	return &Strava{
		HTTPPort:  httpPort,
		TokenFile: tokenFile,
		oauth:     oauthConfig(httpPort, clientID, clientSecret),
	}
}

// RetrieveAuthToken retrieves an authorization token to ensure we can query the APIs.
// A cached token is used and refreshed when possible, the user is asked to authorize
// the application in a browser otherwise.
func (s *Strava) RetrieveAuthToken(ctx context.Context) error {
	tok, err := tokenFromFile(s.TokenFile)
	if err != nil {
		tok, err = s.tokenFromWeb(ctx)
		if err != nil {
			return err
		}
	}

	s.token = tok
	return s.ensureToken(ctx)
}

// Upload uploads the GPX file at path and waits for Strava to process it.
// It returns the id of the created activity.
func (s *Strava) Upload(ctx context.Context, path string, params UploadParams) (int64, error) {
	if err := s.ensureToken(ctx); err != nil {
		return 0, err
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	service := strava.NewUploadsService(strava.NewClient(s.token.AccessToken))

	call := service.Create(strava.FileDataTypes.GPX, filepath.Base(path), file)
	if params.Name != "" {
		call = call.Name(params.Name)
	}
	if params.Description != "" {
		call = call.Description(params.Description)
	}
	if params.ActivityType != "" {
		call = call.ActivityType(strava.ActivityType(params.ActivityType))
	}
	if params.Private {
		call = call.Private()
	}

	upload, err := call.Do()
	if err != nil {
		return 0, err
	}

	for i := 0; i < uploadPollAttempts; i++ {
		if upload.Error != "" {
			return 0, fmt.Errorf("%w: %s", ErrUploadFailed, upload.Error)
		}
		if upload.ActivityId != 0 {
			return upload.ActivityId, nil
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(uploadPollInterval):
		}

		detailed, err := service.Get(upload.Id).Do()
		if err != nil {
			return 0, err
		}
		upload = &detailed.UploadSummary
	}

	return 0, fmt.Errorf("%w: upload %d still processing (%s)", ErrUploadFailed, upload.Id, upload.Status)
}

// GetActivityLink builds strava activity url from activity ID
func GetActivityLink(activityID int64) string {
	return fmt.Sprintf("https://strava.com/activities/%d", activityID)
}

// ensureToken refreshes the token when it is about to expire
func (s *Strava) ensureToken(ctx context.Context) error {
	if s.token == nil {
		return ErrNoToken
	}

	tok, err := s.oauth.TokenSource(ctx, s.token).Token()
	if err != nil {
		return err
	}

	if tok.AccessToken != s.token.AccessToken {
		if err := saveToken(s.TokenFile, tok); err != nil {
			return err
		}
	}

	s.token = tok
	return nil
}
