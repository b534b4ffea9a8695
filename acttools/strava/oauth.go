package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"os/exec"
	"runtime"
	"strconv"

	"golang.org/x/oauth2"
)

const basePath = "https://www.strava.com"
const callbackPath = "/exchange_token"

// ErrAuthorizationDenied is returned when the user refuses to authorize the application
var ErrAuthorizationDenied = errors.New("strava authorization denied")

// ErrInvalidCode is returned when Strava redirects without an authorization code
var ErrInvalidCode = errors.New("strava authorization code missing")

func oauthConfig(httpPort int, clientID int, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     strconv.Itoa(clientID),
		ClientSecret: clientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:   basePath + "/oauth/authorize",
			TokenURL:  basePath + "/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: fmt.Sprintf("http://localhost:%d%s", httpPort, callbackPath),
		Scopes:      []string{"activity:write"},
	}
}

type authorization struct {
	code string
	err  error
}

// tokenFromWeb asks the user to authorize the application in a browser and
// exchanges the returned code for a token.
func (s *Strava) tokenFromWeb(ctx context.Context) (*oauth2.Token, error) {
	done := make(chan authorization, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, handlerFunc(done))
	server := &http.Server{Addr: fmt.Sprintf(":%d", s.HTTPPort), Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case done <- authorization{err: err}:
			default:
			}
		}
	}()
	defer server.Shutdown(context.Background())

	url := s.oauth.AuthCodeURL("act2gpx", oauth2.SetAuthURLParam("approval_prompt", "force"))
	if err := openbrowser(url); err != nil {
		fmt.Printf("Open the following link to authorize act2gpx on Strava:\n%s\n", url)
	}

	var auth authorization
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case auth = <-done:
	}
	if auth.err != nil {
		return nil, auth.err
	}

	tok, err := s.oauth.Exchange(ctx, auth.code)
	if err != nil {
		return nil, err
	}

	if err := saveToken(s.TokenFile, tok); err != nil {
		return nil, err
	}

	return tok, nil
}

// handlerFunc builds a http.HandlerFunc that receives the authorization code
// after a user authorizes an application on strava.com.
func handlerFunc(done chan<- authorization) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var auth authorization
		switch {
		case r.FormValue("error") == "access_denied":
			auth.err = ErrAuthorizationDenied
		case r.FormValue("code") == "":
			auth.err = ErrInvalidCode
		default:
			auth.code = r.FormValue("code")
		}

		if auth.err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Authorization Failure: %s\n", auth.err)
		} else {
			fmt.Fprint(w, "act2gpx is authorized, you can close this window.\n")
		}

		select {
		case done <- auth:
		default:
		}
	}
}

// Retrieves a token from a local file.
func tokenFromFile(path string) (*oauth2.Token, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(b, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", " ")
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	return nil
}

func openbrowser(url string) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return fmt.Errorf("unsupported platform")
	}
}
