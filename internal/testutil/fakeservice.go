// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"minimado/internal/service"
)

// AddCall records one AddTask call.
type AddCall struct {
	UserID string
	Title  string
}

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.Mutex
	tasks []service.Task

	// AddResponse is returned by AddTask on success.
	AddResponse string

	// Recorded calls
	Adds        []AddCall
	ListUserIDs []string

	// Error injection for testing
	AddTaskErr   error
	ListTasksErr error
}

// NewFakeService creates a new FakeService with no tasks.
func NewFakeService() *FakeService {
	return &FakeService{AddResponse: `{"success":true}`}
}

// SetTasks replaces the tasks returned by ListTasks.
func (f *FakeService) SetTasks(tasks ...service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]service.Task(nil), tasks...)
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, userID, title string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Adds = append(f.Adds, AddCall{UserID: userID, Title: title})
	if f.AddTaskErr != nil {
		return "", f.AddTaskErr
	}
	return f.AddResponse, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, userID string) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListUserIDs = append(f.ListUserIDs, userID)
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}
