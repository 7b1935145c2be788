package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// Client issues requests against an http.Handler without a network listener
type Client struct {
	handler http.Handler
	header  http.Header
}

// NewClient creates a client for handler
func NewClient(handler http.Handler) *Client {
	return &Client{handler: handler, header: http.Header{}}
}

// SetHeader adds a header sent with every request
func (c *Client) SetHeader(key, value string) {
	c.header.Set(key, value)
}

// Do sends a request and returns the recorded response
func (c *Client) Do(t testing.TB, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	return rr
}

func (c *Client) doJSON(t testing.TB, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode request body: %v", err)
	}
	return c.Do(t, method, path, bytes.NewReader(body), "application/json")
}

// Get sends a GET request
func (c *Client) Get(t testing.TB, path string) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodGet, path, nil, "")
}

// PostJSON sends payload as a JSON body
func (c *Client) PostJSON(t testing.TB, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return c.doJSON(t, http.MethodPost, path, payload)
}

// PostForm sends values as an urlencoded form
func (c *Client) PostForm(t testing.TB, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodPost, path, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

// PostMultipart sends values as a multipart form
func (c *Client) PostMultipart(t testing.TB, path string, values map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range values {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("failed to write multipart field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return c.Do(t, http.MethodPost, path, &buf, w.FormDataContentType())
}

// PatchJSON sends payload as a JSON body
func (c *Client) PatchJSON(t testing.TB, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return c.doJSON(t, http.MethodPatch, path, payload)
}

// PatchForm sends values as an urlencoded form
func (c *Client) PatchForm(t testing.TB, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodPatch, path, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

// PutJSON sends payload as a JSON body
func (c *Client) PutJSON(t testing.TB, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return c.doJSON(t, http.MethodPut, path, payload)
}

// Delete sends a DELETE request
func (c *Client) Delete(t testing.TB, path string) *httptest.ResponseRecorder {
	t.Helper()
	return c.Do(t, http.MethodDelete, path, nil, "")
}

// DecodeJSON decodes the recorded body into a T
func DecodeJSON[T any](t testing.TB, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return out
}
