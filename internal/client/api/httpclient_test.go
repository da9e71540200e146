package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/meetavet/meetavet/internal/client/credential"
	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewZerologLogger(io.Discard, "error", false)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

// countingServer records how many requests arrived and replies with the
// given handler.
func countingServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHTTPClient_ExpiredTokenFailsLocally(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	store := credential.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(),
		signToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})))

	c := NewHTTPClient(srv.URL, time.Second, store, testLogger())

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, common.ErrTokenExpired)

	// The credential is cleared and nothing was sent.
	tok, err := store.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "", tok)
	require.Equal(t, int32(0), hits.Load())
}

func TestHTTPClient_MalformedTokenFailsLocally(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	store := credential.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "garbage"))

	c := NewHTTPClient(srv.URL, time.Second, store, testLogger())

	_, err := c.Summary(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidToken)

	tok, _ := store.Get(context.Background())
	require.Equal(t, "", tok)
	require.Equal(t, int32(0), hits.Load())
}

func TestHTTPClient_BearerAttached(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})

	var gotAuth, gotReqID string
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthorizationHeader)
		gotReqID = r.Header.Get(common.RequestIDHeader)
		w.Write([]byte(`{"totalAnimals": 4}`))
	})

	store := credential.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), token))

	c := NewHTTPClient(srv.URL, time.Second, store, testLogger())

	s, err := c.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, s.TotalAnimals)
	require.Equal(t, common.BearerPrefix+token, gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestHTTPClient_AnonymousRequestHasNoAuthHeader(t *testing.T) {
	var hadAuth bool
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header[common.AuthorizationHeader]
		w.Write([]byte(`{"token":"issued"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	tok, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	require.Equal(t, "issued", tok)
	require.False(t, hadAuth)
}

func TestHTTPClient_AccessTokenSpelling(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"alt"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	tok, err := c.AdminLogin(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	require.Equal(t, "alt", tok)
}

func TestHTTPClient_ServerErrorStatus(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrServer)
}

func TestHTTPClient_ClientErrorCarriesServerMessage(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"wrong password"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	_, err := c.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	require.ErrorIs(t, err, ErrServer)
	require.Contains(t, err.Error(), "wrong password")
}

func TestHTTPClient_ClientErrorGenericFallback(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`not even json`))
	})

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrServer)
	require.Contains(t, err.Error(), "status 404")
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	_, err := c.Summary(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	c := NewHTTPClient(srv.URL, 50*time.Millisecond, credential.NewMemoryStore(), testLogger())

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_ExpiryUsesInjectedClock(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	exp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := credential.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), signToken(t, jwt.MapClaims{"exp": exp.Unix()})))

	c := NewHTTPClient(srv.URL, time.Second, store, testLogger())
	c.now = func() time.Time { return exp.Add(-time.Minute) }

	_, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(1), hits.Load())

	c.now = func() time.Time { return exp.Add(time.Minute) }
	_, err = c.Profile(context.Background())
	require.ErrorIs(t, err, common.ErrTokenExpired)
	require.Equal(t, int32(1), hits.Load())
}

func TestHTTPClient_CreateAppointmentNormalizesResponse(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/appointments", r.URL.Path)
		w.Write([]byte(`{"appointment_id": 17, "status": "Pending", "appointment_date": "2024-03-01T09:30:00.000Z"}`))
	})

	c := NewHTTPClient(srv.URL, time.Second, credential.NewMemoryStore(), testLogger())

	a, err := c.CreateAppointment(context.Background(), models.AppointmentRequest{
		AppointmentDate: "2024-03-01T09:30:00.000Z",
	})
	require.NoError(t, err)
	require.Equal(t, "17", a.ID)
	require.Equal(t, models.StatusPending, a.Status)
	require.True(t, a.Scheduled())
}
