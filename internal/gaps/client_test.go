package gaps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakePortal emulates the consultation endpoint: a login POST that sets the
// session cookie, then an AJAX refresh POST gated on that cookie.
func fakePortal(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		if r.PostForm.Get("login") != "" {
			require.Equal(t, "student", r.PostForm.Get("login"))
			require.Equal(t, "s3cret pass", r.PostForm.Get("password"))
			require.Equal(t, "Entrer", r.PostForm.Get("submit"))
			http.SetCookie(w, &http.Cookie{Name: "GAPSSESSID", Value: "abc123"})
			w.WriteHeader(http.StatusOK)
			return
		}

		cookie, err := r.Cookie("GAPSSESSID")
		require.NoError(t, err, "refresh request must carry the session cookie")
		require.Equal(t, "abc123", cookie.Value)
		require.Equal(t, "replaceHtmlPart", r.PostForm.Get("rs"))
		require.Equal(t, `["result",null]`, r.PostForm.Get("rsargs"))

		w.Write([]byte(payload))
	}))
}

func TestFetchReport(t *testing.T) {
	const payload = `+:"{\"parts\":{\"result\":\"<table><\\\/table>\"}}"`

	server := fakePortal(t, payload)
	defer server.Close()

	client, err := NewClient("student", "s3cret pass", WithBaseURL(server.URL))
	require.NoError(t, err)

	raw, err := client.FetchReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, payload, raw)
}

func TestFetchReportAuthenticationFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient("student", "wrong", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.FetchReport(context.Background())
	require.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestFetchReportTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient("student", "s3cret pass", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.FetchReport(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrAuthenticationFailed)
}

func TestFetchReportCustomRefreshForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("login") != "" {
			w.WriteHeader(http.StatusOK)
			return
		}
		require.Equal(t, "smartReplacePart", r.PostForm.Get("rs"))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client, err := NewClient("student", "pw",
		WithBaseURL(server.URL),
		WithRefreshForm(map[string]string{"rs": "smartReplacePart", "rsargs": `["result",null]`}),
	)
	require.NoError(t, err)

	raw, err := client.FetchReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", raw)
}
