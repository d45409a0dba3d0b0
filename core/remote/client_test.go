package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type item struct {
	ID    *int64  `json:"id"`
	Title *string `json:"title"`
}

func newTestClient(t *testing.T) (Client, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewClient(Config{TimeoutSeconds: 5}, zap.New(core))
	t.Cleanup(c.Close)
	return c, logs
}

func TestClient_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":1,"title":"T1"},{"id":2,"title":"T2"}]`)
		}))
		defer srv.Close()

		c, _ := newTestClient(t)
		var out []item
		require.NoError(t, c.List(context.Background(), srv.URL, &out))
		require.Len(t, out, 2)
		assert.Equal(t, int64(2), *out[1].ID)
		assert.Equal(t, "T1", *out[0].Title)
	})

	t.Run("Non 2xx Is Transport Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c, _ := newTestClient(t)
		var out []item
		err := c.List(context.Background(), srv.URL, &out)

		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
		assert.Equal(t, http.MethodGet, te.Op)
	})

	t.Run("Non JSON Body Is Transport Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>maintenance</html>")
		}))
		defer srv.Close()

		c, _ := newTestClient(t)
		var out []item
		err := c.List(context.Background(), srv.URL, &out)

		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, "decode", te.Op)
	})

	t.Run("Object Instead Of Array Is Transport Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"id":1}`)
		}))
		defer srv.Close()

		c, _ := newTestClient(t)
		var out []item
		var te *TransportError
		assert.ErrorAs(t, c.List(context.Background(), srv.URL, &out), &te)
	})

	t.Run("Connection Refused Is Transport Error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c, _ := newTestClient(t)
		var out []item
		err := c.List(context.Background(), url, &out)

		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Zero(t, te.StatusCode)
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestClient_MutatingVerbs(t *testing.T) {
	var received []string
	var bodies []map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = append(received, r.Method+" "+r.URL.Path)
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				bodies = append(bodies, body)
			}
		}
		switch {
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		case r.URL.Path == "/posts/404":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	c, logs := newTestClient(t)
	ctx := context.Background()
	payload := map[string]any{"userId": 1, "title": "T", "body": "B"}

	status, err := c.Create(ctx, srv.URL+"/posts", payload)
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, status)

	status, err = c.Update(ctx, srv.URL+"/posts/2", payload)
	require.NoError(t, err)
	assert.Equal(t, StatusUpdated, status)

	status, err = c.Delete(ctx, srv.URL+"/posts/3")
	require.NoError(t, err)
	assert.Equal(t, StatusDeleted, status)

	// Unexpected status is reported, not raised
	status, err = c.Delete(ctx, srv.URL+"/posts/404")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)

	assert.Equal(t, []string{"POST /posts", "PATCH /posts/2", "DELETE /posts/3", "DELETE /posts/404"}, received)
	require.Len(t, bodies, 2)
	assert.Equal(t, "T", bodies[0]["title"])

	assert.Equal(t, 3, logs.FilterMessageSnippet("succeeded").Len())
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Delete request got unexpected status", warnings[0].Message)
	assert.Equal(t, int64(http.StatusNotFound), warnings[0].ContextMap()["status"])
	assert.Equal(t, srv.URL+"/posts/404", warnings[0].ContextMap()["url"])
}

func TestClient_MutatingTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(t)

	_, err := c.Create(context.Background(), url+"/posts", map[string]any{"title": "T"})
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.MethodPost, te.Op)
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Delete(ctx, srv.URL+"/posts/1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransportError_Error(t *testing.T) {
	assert.Equal(t, "GET http://x/posts: unexpected status 500",
		(&TransportError{Op: "GET", URL: "http://x/posts", StatusCode: 500}).Error())
	assert.Equal(t, "decode http://x/posts: boom",
		(&TransportError{Op: "decode", URL: "http://x/posts", Err: errors.New("boom")}).Error())
}
