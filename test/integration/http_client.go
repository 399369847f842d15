//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives the router in-process as one subject.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (c *HTTPClient) Do(method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return &Response{StatusCode: w.Code, Body: w.Body.Bytes()}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.Do(http.MethodGet, path, nil)
}

func (c *HTTPClient) POST(path string, body any) (*Response, error) {
	return c.Do(http.MethodPost, path, body)
}

func (c *HTTPClient) PATCH(path string, body any) (*Response, error) {
	return c.Do(http.MethodPatch, path, body)
}

func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
