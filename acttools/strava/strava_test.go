package strava

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGetActivityLink(t *testing.T) {
	require := require.New(t)

	require.Equal("https://strava.com/activities/1234", GetActivityLink(1234))
}

func TestOauthConfig(t *testing.T) {
	require := require.New(t)

	conf := oauthConfig(8080, 42, "secret")
	url := conf.AuthCodeURL("state")

	require.True(strings.HasPrefix(url, "https://www.strava.com/oauth/authorize?"))
	require.Contains(url, "client_id=42")
	require.Contains(url, "scope=activity%3Awrite")
	require.Contains(url, "redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Fexchange_token")
	require.Equal("https://www.strava.com/oauth/token", conf.Endpoint.TokenURL)
}

func TestHandlerFunc(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		query  string
		code   string
		err    error
		status int
	}{
		"code":    {query: "?code=abc&scope=activity:write", code: "abc", status: http.StatusOK},
		"denied":  {query: "?error=access_denied", err: ErrAuthorizationDenied, status: http.StatusBadRequest},
		"no_code": {query: "", err: ErrInvalidCode, status: http.StatusBadRequest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			done := make(chan authorization, 1)
			rec := httptest.NewRecorder()
			handlerFunc(done)(rec, httptest.NewRequest("GET", callbackPath+tc.query, nil))

			auth := <-done
			require.Equal(tc.status, rec.Code)
			require.Equal(tc.code, auth.code)
			require.True(errors.Is(auth.err, tc.err) || (auth.err == nil && tc.err == nil))
		})
	}
}

func TestTokenFile(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "strava")
	require.NoError(err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "token.json")
	_, err = tokenFromFile(path)
	require.Error(err)

	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(saveToken(path, &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", Expiry: expiry}))

	tok, err := tokenFromFile(path)
	require.NoError(err)
	require.Equal("access", tok.AccessToken)
	require.Equal("refresh", tok.RefreshToken)
	require.True(expiry.Equal(tok.Expiry))
}

func TestEnsureToken(t *testing.T) {
	require := require.New(t)

	dir, err := ioutil.TempDir("", "strava")
	require.NoError(err)
	defer os.RemoveAll(dir)

	s := NewClient(8080, 42, "secret", filepath.Join(dir, "token.json"))
	require.True(errors.Is(s.ensureToken(context.Background()), ErrNoToken))

	// a valid token is used as is, without being saved again
	s.token = &oauth2.Token{AccessToken: "access", Expiry: time.Now().Add(time.Hour)}
	require.NoError(s.ensureToken(context.Background()))
	require.Equal("access", s.token.AccessToken)
	_, err = os.Stat(s.TokenFile)
	require.True(os.IsNotExist(err))
}
