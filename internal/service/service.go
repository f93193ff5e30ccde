// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Every call is attempted once; implementations never retry.
type Service interface {
	// AddTask creates a task with the given title on behalf of userID and
	// returns the raw response body.
	AddTask(ctx context.Context, userID, title string) (string, error)

	// ListTasks returns every task owned by userID, in server order.
	ListTasks(ctx context.Context, userID string) ([]Task, error)
}
