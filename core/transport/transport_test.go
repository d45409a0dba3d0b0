package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Unset", 0, DefaultTimeout},
		{"Negative", -5, DefaultTimeout},
		{"Configured", 5, 5 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Timeout(tt.seconds))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("Bounds Setup And Headers", func(t *testing.T) {
		tr := New(Options{TimeoutSeconds: 7})
		assert.Equal(t, 7*time.Second, tr.TLSHandshakeTimeout)
		assert.Equal(t, 7*time.Second, tr.ResponseHeaderTimeout)
		assert.NotNil(t, tr.DialContext)
		assert.Zero(t, tr.MaxIdleConnsPerHost)
		assert.Nil(t, tr.TLSClientConfig)
	})

	t.Run("Default Timeout", func(t *testing.T) {
		tr := New(Options{})
		assert.Equal(t, DefaultTimeout, tr.ResponseHeaderTimeout)
	})

	t.Run("Per Host Pool And Insecure TLS", func(t *testing.T) {
		tr := New(Options{MaxIdleConnsPerHost: 100, InsecureSkipVerify: true})
		assert.Equal(t, 100, tr.MaxIdleConnsPerHost)
		require.NotNil(t, tr.TLSClientConfig)
		assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
	})
}

func TestNew_ResponseHeaderTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	tr := New(Options{TimeoutSeconds: 1})
	t.Cleanup(tr.CloseIdleConnections)

	start := time.Now()
	_, err := (&http.Client{Transport: tr}).Get(server.URL)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNew_InsecureSkipVerifyReachesTLSServer(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	_, err := (&http.Client{Transport: New(Options{TimeoutSeconds: 5})}).Get(server.URL)
	require.Error(t, err, "self-signed certificate is rejected by default")

	resp, err := (&http.Client{Transport: New(Options{TimeoutSeconds: 5, InsecureSkipVerify: true})}).Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
