package strava

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/domain/service"
	"bpaml/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExchanger(t *testing.T, handler http.HandlerFunc) service.TokenExchanger {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	exchanger, err := NewTokenExchanger(newTestConfig(server.URL), NewHTTPClient(nil), slog.Default())
	require.NoError(t, err)

	return exchanger
}

func TestAuthCodeURL(t *testing.T) {
	exchanger := newTestExchanger(t, func(http.ResponseWriter, *http.Request) {})

	raw := exchanger.AuthCodeURL("state-1")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "/oauth/authorize", parsed.Path)
	assert.Equal(t, "1234", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "state-1", query.Get("state"))
	assert.Equal(t, "read,activity:read_all", query.Get("scope"))
	assert.Equal(t, "auto", query.Get("approval_prompt"))
	assert.Equal(t, "http://localhost/oauth/strava/callback", query.Get("redirect_uri"))
}

func TestExchange_ParsesAthleteAndExpiry(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "1234", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"token_type": "Bearer", "access_token": "a1", "refresh_token": "r1",
			"expires_at": 1717000000, "expires_in": 21600,
			"athlete": {"id": 555, "firstname": "Sam", "lastname": "Lee", "city": "Brisbane", "country": "Australia", "profile": "https://img/555.jpg"}
		}`))
	})

	grant, err := exchanger.Exchange(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "a1", grant.AccessToken)
	assert.Equal(t, "r1", grant.RefreshToken)
	assert.Equal(t, time.Unix(1717000000, 0).UTC(), grant.ExpiresAt)
	require.NotNil(t, grant.Athlete)
	assert.Equal(t, int64(555), grant.Athlete.StravaID)
	assert.Equal(t, "Sam", grant.Athlete.FirstName)
	assert.Equal(t, "Brisbane", grant.Athlete.City)
	assert.Equal(t, "https://img/555.jpg", grant.Athlete.ProfileURL)
}

func TestExchange_MissingAthlete(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type": "Bearer", "access_token": "a1", "refresh_token": "r1", "expires_at": 1717000000}`))
	})

	_, err := exchanger.Exchange(context.Background(), "the-code")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMalformedPayload))
}

func TestExchange_InvalidCode(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Bad Request", "errors": [{"resource": "AuthorizationCode", "code": "invalid"}]}`))
	})

	_, err := exchanger.Exchange(context.Background(), "stale")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeInvalid))
}

func TestRefresh(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "r0", r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type": "Bearer", "access_token": "a2", "refresh_token": "r2", "expires_at": 1717021600, "expires_in": 21600}`))
	})

	grant, err := exchanger.Refresh(context.Background(), "r0")

	require.NoError(t, err)
	assert.Equal(t, "a2", grant.AccessToken)
	assert.Equal(t, "r2", grant.RefreshToken)
	assert.Equal(t, time.Unix(1717021600, 0).UTC(), grant.ExpiresAt)
	assert.Nil(t, grant.Athlete)
}

func TestRefresh_FallsBackToExpiresIn(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type": "Bearer", "access_token": "a2", "refresh_token": "r2", "expires_in": 3600}`))
	})

	before := time.Now()
	grant, err := exchanger.Refresh(context.Background(), "r0")

	require.NoError(t, err)
	assert.True(t, grant.ExpiresAt.After(before.Add(59*time.Minute)))
}

func TestRefresh_Rejected(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Bad Request", "errors": [{"resource": "RefreshToken", "code": "invalid"}]}`))
	})

	_, err := exchanger.Refresh(context.Background(), "revoked")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderAuthInvalid))
}

func TestRefresh_ServerError(t *testing.T) {
	exchanger := newTestExchanger(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := exchanger.Refresh(context.Background(), "r0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
}

func TestRefresh_Timeout(t *testing.T) {
	exchanger := newTestExchanger(t, func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := exchanger.Refresh(context.Background(), "r0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
}

func TestInt64Extra(t *testing.T) {
	for _, v := range []any{float64(10), int64(10), "10"} {
		n, ok := int64Extra(v)
		assert.True(t, ok)
		assert.Equal(t, int64(10), n)
	}

	_, ok := int64Extra(nil)
	assert.False(t, ok)
}
