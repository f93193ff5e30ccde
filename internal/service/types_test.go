package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimado/internal/service"
)

func TestTagUnmarshal(t *testing.T) {
	testCases := []struct {
		input    string
		expected service.Tag
		display  string
	}{
		{`"urgent"`, service.TextTag("urgent"), "urgent"},
		{`{"name":"home"}`, service.NamedTag("home"), "home"},
		{`{"name":"home","color":"red"}`, service.NamedTag("home"), "home"},
		{`{}`, service.Tag{}, "unknown"},
		{`{"name":""}`, service.Tag{}, "unknown"},
		{`{"name":42}`, service.Tag{}, "unknown"},
		{`42`, service.Tag{}, "unknown"},
		{`null`, service.Tag{}, "unknown"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var tag service.Tag
			require.NoError(t, json.Unmarshal([]byte(tc.input), &tag))
			assert.Equal(t, tc.expected, tag)
			assert.Equal(t, tc.display, tag.DisplayName())
		})
	}
}

func TestTagMarshalKeepsShape(t *testing.T) {
	b, err := json.Marshal([]service.Tag{service.TextTag("urgent"), service.NamedTag("home"), {}})
	require.NoError(t, err)
	assert.Equal(t, `["urgent",{"name":"home"},{}]`, string(b))
}

func TestTaskUnmarshal(t *testing.T) {
	input := `{
		"text": "Buy milk",
		"completed": true,
		"createdAt": "2026-10-10T09:30:00.000Z",
		"completedAt": "2026-10-12T18:00:00.000Z",
		"tags": ["urgent", {"name": "home"}]
	}`

	var task service.Task
	require.NoError(t, json.Unmarshal([]byte(input), &task))

	assert.Equal(t, "Buy milk", task.Text)
	assert.True(t, task.Completed)
	assert.True(t, task.CreatedAt.Equal(time.Date(2026, 10, 10, 9, 30, 0, 0, time.UTC)))
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(time.Date(2026, 10, 12, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, []service.Tag{service.TextTag("urgent"), service.NamedTag("home")}, task.Tags)
	assert.NoError(t, task.Validate())
}

func TestTaskNullCompletedAt(t *testing.T) {
	var task service.Task
	require.NoError(t, json.Unmarshal([]byte(`{"text":"x","createdAt":"2026-10-10T09:30:00Z","completedAt":null}`), &task))
	assert.Nil(t, task.CompletedAt)
}

func TestTaskValidate(t *testing.T) {
	assert.ErrorIs(t, service.Task{Text: "no date"}.Validate(), service.ErrMissingCreatedAt)
}
