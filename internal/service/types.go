// Package service defines the task types and the interfaces commands depend on.
package service

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParseStatus parses a status name.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown statuses so a hand-edited store with a bad
// status fails to load instead of carrying an invalid task.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Task represents a single task item.
type Task struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// SerialNumber is the 1-based position at load time. Not an identity.
	SerialNumber int `json:"serialNumber"`
}

// Touch records a mutation at now. UpdatedAt always moves forward, even when
// the clock has not advanced since the previous write.
func (t *Task) Touch(now time.Time) {
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Nanosecond)
	}
	t.UpdatedAt = now
}

// TaskList represents a remote task list.
type TaskList struct {
	ID    string
	Title string
}

// RemoteTask is a task as stored by the remote mirror backend.
type RemoteTask struct {
	ID        string
	Title     string
	Notes     string
	Completed bool
}
