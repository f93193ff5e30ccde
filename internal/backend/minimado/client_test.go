package minimado_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimado/internal/backend/minimado"
	"minimado/internal/service"
)

func newClient(t *testing.T, handler http.HandlerFunc) (*minimado.Client, *test.Hook) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log, hook := test.NewNullLogger()
	return minimado.New(log, minimado.WithEndpoint(srv.URL+"/")), hook
}

func TestAddTask(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks/add", r.URL.Path)
		assert.Equal(t, "user_abc", r.Header.Get("X-Clerk-User-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Buy milk"}`, string(b))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"t1","text":"Buy milk"}`)
	})

	body, err := client.AddTask(context.Background(), "user_abc", "Buy milk")

	require.NoError(t, err)
	assert.Equal(t, `{"id":"t1","text":"Buy milk"}`, body)
}

func TestAddTaskAPIError(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Unauthorized"}`)
	})

	_, err := client.AddTask(context.Background(), "bad", "x")

	var apiErr *minimado.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message())
	assert.Equal(t, "request failed with status 401: Unauthorized", err.Error())
}

func TestAPIErrorMessage(t *testing.T) {
	testCases := []struct {
		body     string
		expected string
	}{
		{`{"error":"boom"}`, "request failed with status 500: boom"},
		{`{"message":"try later"}`, "request failed with status 500: try later"},
		{"Internal Server Error\n", "request failed with status 500: Internal Server Error"},
		{"", "request failed with status 500"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			err := &minimado.APIError{StatusCode: 500, Body: tc.body}
			assert.Equal(t, tc.expected, err.Error())
		})
	}
}

func TestListTasks(t *testing.T) {
	client, hook := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "user_abc", r.Header.Get("X-Clerk-User-Id"))
		_, _ = io.WriteString(w, `[
			{"text":"First","completed":false,"createdAt":"2026-10-18T10:00:00.000Z","tags":["urgent",{"name":"home"}]},
			{"text":"Broken","createdAt":"yesterday"},
			{"text":"No date"},
			{"text":"Second","completed":true,"createdAt":"2026-10-01T10:00:00.000Z","completedAt":"2026-10-02T10:00:00.000Z"}
		]`)
	})

	tasks, err := client.ListTasks(context.Background(), "user_abc")

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Text)
	assert.Equal(t, []service.Tag{service.TextTag("urgent"), service.NamedTag("home")}, tasks[0].Tags)
	assert.Equal(t, "Second", tasks[1].Text)
	assert.True(t, tasks[1].Completed)

	var warnings int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func TestListTasksEmpty(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]any{})
	})

	tasks, err := client.ListTasks(context.Background(), "user_abc")

	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasksNotAnArray(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"tasks":[]}`)
	})

	_, err := client.ListTasks(context.Background(), "user_abc")

	assert.Error(t, err)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()
	log, _ := test.NewNullLogger()
	client := minimado.New(log, minimado.WithEndpoint(endpoint))

	_, err := client.ListTasks(context.Background(), "user_abc")

	require.Error(t, err)
	var apiErr *minimado.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestRequestAttemptedOnce(t *testing.T) {
	calls := 0
	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.AddTask(context.Background(), "user_abc", "x")

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
