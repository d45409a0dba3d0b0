package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"blog-sync/core/transport"

	"go.uber.org/zap"
)

// Client defines the operations issued against the remote system of record.
type Client interface {
	// List fetches a collection and decodes the JSON array into out (a pointer to a slice).
	// Any failure, including a non-2xx status, is returned as a *TransportError.
	List(ctx context.Context, url string, out any) error
	// Create POSTs payload to a collection URL. Success is 201.
	Create(ctx context.Context, url string, payload any) (int, error)
	// Update PATCHes payload to an item URL. Success is 200.
	Update(ctx context.Context, url string, payload any) (int, error)
	// Delete removes an item URL. Success is 200.
	Delete(ctx context.Context, url string) (int, error)
	// Close releases the idle connections of the client's pool.
	Close()
}

// Expected statuses of the mutating verbs. Anything else is logged as a warning
// and reported back to the caller, but is not an error.
const (
	StatusCreated = http.StatusCreated
	StatusUpdated = http.StatusOK
	StatusDeleted = http.StatusOK
)

type httpClient struct {
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a client with its own connection pool.
func NewClient(cfg Config, logger *zap.Logger) Client {
	t := transport.New(transport.Options{
		TimeoutSeconds:      cfg.TimeoutSeconds,
		MaxIdleConnsPerHost: 100,
		InsecureSkipVerify:  cfg.InsecureSkipVerify,
	})

	return &httpClient{
		http:   &http.Client{Transport: t},
		logger: logger,
	}
}

func (c *httpClient) List(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransportError{Op: http.MethodGet, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: http.MethodGet, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{Op: http.MethodGet, URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode", URL: url, Err: err}
	}

	c.logger.Debug("List request succeeded", zap.String("url", url))
	return nil
}

func (c *httpClient) Create(ctx context.Context, url string, payload any) (int, error) {
	return c.send(ctx, "Create", http.MethodPost, url, payload, StatusCreated)
}

func (c *httpClient) Update(ctx context.Context, url string, payload any) (int, error) {
	return c.send(ctx, "Update", http.MethodPatch, url, payload, StatusUpdated)
}

func (c *httpClient) Delete(ctx context.Context, url string) (int, error) {
	return c.send(ctx, "Delete", http.MethodDelete, url, nil, StatusDeleted)
}

func (c *httpClient) Close() {
	c.http.CloseIdleConnections()
}

// send issues one mutating request and logs its outcome.
func (c *httpClient) send(ctx context.Context, name, method, url string, payload any, expected int) (int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, &TransportError{Op: method, URL: url, Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, &TransportError{Op: method, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &TransportError{Op: method, URL: url, Err: err}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	fields := []zap.Field{zap.String("url", url), zap.Int("status", resp.StatusCode)}
	if payload != nil {
		fields = append(fields, zap.Any("payload", payload))
	}

	if resp.StatusCode != expected {
		c.logger.Warn(name+" request got unexpected status", fields...)
	} else {
		c.logger.Info(name+" request succeeded", fields...)
	}

	return resp.StatusCode, nil
}
