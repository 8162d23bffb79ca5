// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"taskcli/internal/service"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeRemote is an in-memory implementation of service.Remote for testing.
type FakeRemote struct {
	mu     sync.RWMutex
	lists  []service.TaskList
	tasks  map[string][]service.RemoteTask // listID -> tasks
	nextID int

	// Error injection for testing
	EnsureListErr error
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error

	// Call counters
	Creates int
	Updates int
	Deletes int
}

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		tasks: make(map[string][]service.RemoteTask),
	}
}

// AddList adds a list to the fake remote.
func (f *FakeRemote) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.TaskList{ID: id, Title: title})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// AddTask adds a task to a list directly, bypassing counters.
func (f *FakeRemote) AddTask(listID string, task service.RemoteTask) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], task)
}

// Lists returns a copy of all lists.
func (f *FakeRemote) Lists() []service.TaskList {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.TaskList, len(f.lists))
	copy(result, f.lists)
	return result
}

// Tasks returns a copy of the tasks in a list.
func (f *FakeRemote) Tasks(listID string) []service.RemoteTask {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.RemoteTask, len(f.tasks[listID]))
	copy(result, f.tasks[listID])
	return result
}

// EnsureList implements service.Remote.
func (f *FakeRemote) EnsureList(ctx context.Context, title string) (service.TaskList, error) {
	if f.EnsureListErr != nil {
		return service.TaskList{}, f.EnsureListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	want := strings.ToLower(strings.TrimSpace(title))
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			return l, nil
		}
	}

	// Generate a simple ID
	id := strings.ReplaceAll(want, " ", "-")
	list := service.TaskList{ID: id, Title: title}
	f.lists = append(f.lists, list)
	f.tasks[id] = nil
	return list, nil
}

// ListTasks implements service.Remote.
func (f *FakeRemote) ListTasks(ctx context.Context, listID string) ([]service.RemoteTask, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, ErrNotFound
	}
	result := make([]service.RemoteTask, len(tasks))
	copy(result, tasks)
	return result, nil
}

// CreateTask implements service.Remote.
func (f *FakeRemote) CreateTask(ctx context.Context, listID string, task service.RemoteTask) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[listID]; !ok {
		return ErrNotFound
	}

	f.nextID++
	task.ID = fmt.Sprintf("r%d", f.nextID)
	f.tasks[listID] = append(f.tasks[listID], task)
	f.Creates++
	return nil
}

// UpdateTask implements service.Remote.
func (f *FakeRemote) UpdateTask(ctx context.Context, listID string, task service.RemoteTask) error {
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks[listID] {
		if t.ID == task.ID {
			f.tasks[listID][i] = task
			f.Updates++
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements service.Remote.
func (f *FakeRemote) DeleteTask(ctx context.Context, listID, taskID string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tasks := f.tasks[listID]
	for i, t := range tasks {
		if t.ID == taskID {
			f.tasks[listID] = append(tasks[:i], tasks[i+1:]...)
			f.Deletes++
			return nil
		}
	}
	return ErrNotFound
}

var _ service.Remote = (*FakeRemote)(nil)
