// Package authapi talks to the sign-in endpoint of the backend.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultLoginPath = "/api/auth/login"

// Error is a failed login as reported to the user. Its message is shown
// verbatim by the form.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// LoginRequest is the body posted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorBody is the shape the backend uses for failures.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client posts credentials to the backend.
type Client struct {
	BaseURL    string
	LoginPath  string
	HTTPClient *http.Client

	log *logrus.Entry
}

type Option func(*Client)

func WithLoginPath(path string) Option {
	return func(c *Client) { c.LoginPath = path }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

func WithLogger(l *logrus.Entry) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		LoginPath:  DefaultLoginPath,
		HTTPClient: http.DefaultClient,
		log:        logrus.WithField("component", "authapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login posts the credentials and returns nil on a 2xx response. Any other
// outcome is returned as *Error.
func (c *Client) Login(ctx context.Context, email, password string) error {
	requestBody, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return &Error{Message: "Failed to create request body: " + err.Error()}
	}

	url := c.BaseURL + c.LoginPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return &Error{Message: "Request failed: " + err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", url).Warn("login request failed")
		return &Error{Message: "Request failed: " + err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "Failed to read response body: " + err.Error()}
	}

	c.log.WithFields(logrus.Fields{
		"url":    url,
		"status": resp.StatusCode,
	}).Debug("login response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &Error{Status: resp.StatusCode, Message: failureMessage(resp.StatusCode, body)}
}

func failureMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" && !json.Valid(body) {
		return text
	}
	return fmt.Sprintf("API Error (status %d)", status)
}
