// Package minimado implements the service.Service interface over the
// minimado HTTP API.
package minimado

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"minimado/internal/service"
)

const (
	// DefaultEndpoint is the base URL of the minimado service.
	DefaultEndpoint = "https://minimado.app"

	// AddTaskPath is the path for creating a task.
	AddTaskPath = "/api/tasks/add"

	// ListTasksPath is the path for listing tasks.
	ListTasksPath = "/api/tasks"

	// UserIDHeader carries the user ID on every request.
	UserIDHeader = "X-Clerk-User-Id"

	userAgent = "minimado-cli"
)

// APIError is returned for responses with a non-2xx status code.
type APIError struct {
	StatusCode int
	Body       string
}

// Message returns the error message sent by the server. JSON bodies with
// an "error" or "message" string yield that string; anything else is
// returned trimmed.
func (e *APIError) Message() string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(e.Body), &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(e.Body)
}

func (e *APIError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the base URL. Meant for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client implements service.Service. Requests have no timeout of their
// own; they end when the server answers or ctx is cancelled.
type Client struct {
	endpoint string
	http     *http.Client
	log      logrus.FieldLogger
}

// New creates a client for the default endpoint.
func New(log logrus.FieldLogger, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{},
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddTask implements service.Service.
func (c *Client) AddTask(ctx context.Context, userID, title string) (string, error) {
	body := struct {
		Title string `json:"title"`
	}{title}
	b, err := c.do(ctx, http.MethodPost, AddTaskPath, userID, body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ListTasks implements service.Service. Records that cannot be decoded or
// lack a creation time are logged and left out.
func (c *Client) ListTasks(ctx context.Context, userID string) ([]service.Task, error) {
	b, err := c.do(ctx, http.MethodGet, ListTasksPath, userID, nil)
	if err != nil {
		return nil, err
	}
	return c.decodeTasks(b)
}

func (c *Client) decodeTasks(b []byte) ([]service.Task, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	tasks := make([]service.Task, 0, len(records))
	for i, raw := range records {
		var task service.Task
		err := json.Unmarshal(raw, &task)
		if err == nil {
			err = task.Validate()
		}
		if err != nil {
			c.log.WithFields(logrus.Fields{
				"index": i,
				"cause": err,
			}).Warning("Skipping malformed task record")
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (c *Client) do(ctx context.Context, method, path, userID string, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(UserIDHeader, userID)
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logEntry := c.log.WithFields(logrus.Fields{
		"method": method,
		"url":    req.URL.String(),
	})
	logEntry.Debug("Sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logEntry.WithField("cause", err).Warning("Could not close response body")
		}
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	logEntry.WithField("status", resp.StatusCode).Debug("Received response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return b, nil
}

var _ service.Service = (*Client)(nil)
