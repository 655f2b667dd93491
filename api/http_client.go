package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// APIError is a non-2xx response from the remote API, carrying whatever
// {error|message} text the server put in the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is a 401/403 API response. Callers clear
// the stored token and prompt re-login on these.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// HTTPClient struct to hold base URL and HTTP client configuration.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewHTTPClient creates a new instance of HTTPClient with default settings.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second, // Set a timeout for requests
		},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// ClearToken drops the bearer token.
func (c *HTTPClient) ClearToken() {
	c.token = ""
}

// Request makes an HTTP request to the API and decodes the response. A non
// 2xx status comes back as *APIError with the server's error message.
func (c *HTTPClient) Request(method, endpoint string, query url.Values, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	reqURL := c.BaseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, reqURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &APIError{
			StatusCode: res.StatusCode,
			Message:    errorMessage(resBody, res.Status),
		}
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}

// errorMessage pulls the server's text out of a {error|message} JSON body,
// falling back to the HTTP status line.
func errorMessage(body []byte, status string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return status
}
