package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/top10" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv.URL
}

func TestTop_DecodesPosts(t *testing.T) {
	t.Parallel()

	base := serve(t, http.StatusOK, `[
		{"id":"6f1c2a52-3d4e-4b8a-9c1e-5a7d2f0b8e31","name":"Alpha","tagline":"a","votesCount":50,"createdAt":"2026-10-10T08:00:00Z","url":"https://ph/alpha"}
	]`)

	c, err := New(base+"/", nil)
	require.NoError(t, err)

	posts, err := c.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "Alpha", posts[0].Name)
	require.EqualValues(t, 50, posts[0].VotesCount)
	require.Equal(t, 2026, posts[0].CreatedAt.Year())
}

func TestTop_ErrorBodyIsSurfaced(t *testing.T) {
	t.Parallel()

	c, err := New(serve(t, http.StatusBadGateway, `{"error":"failed to fetch data from Product Hunt API","code":"upstream_unavailable"}`), nil)
	require.NoError(t, err)

	_, err = c.Top(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrRequestFailed))
	require.Contains(t, err.Error(), "failed to fetch data from Product Hunt API")
}

func TestTop_NonJSONErrorFallsBackToStatusText(t *testing.T) {
	t.Parallel()

	c, err := New(serve(t, http.StatusInternalServerError, "oops"), nil)
	require.NoError(t, err)

	_, err = c.Top(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)
	require.Contains(t, err.Error(), "Internal Server Error")
}

func TestNew_RejectsBadBase(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "localhost:50090", "://bad"} {
		_, err := New(base, nil)
		require.Error(t, err, base)
	}
}
