// Package store implements the JSON-file task store.
//
// The whole collection lives in one file and is rewritten on every mutation.
// There is no locking: two processes mutating the same file concurrently
// race, and the last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taskcli/internal/logger"
	"taskcli/internal/service"
)

var (
	// ErrNotFound is returned when no task matches a reference.
	ErrNotFound = errors.New("task not found")

	// ErrCorrupt is returned when the store file exists but cannot be parsed.
	ErrCorrupt = errors.New("store is corrupt")

	// ErrPersist is returned when writing the store file fails.
	ErrPersist = errors.New("failed to save tasks")
)

// Store is a handle to one task file.
type Store struct {
	path  string
	newID func() string
	now   func() time.Time
	log   logrus.FieldLogger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator sets the id source used by Add.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock sets the time source for timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store backed by the file at path.
func New(path string, opts ...Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("store path is required")
	}
	s := &Store{
		path:  path,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads all tasks and renumbers them 1..N.
//
// A missing file is created with an empty collection. A file that cannot be
// parsed, or whose records break an invariant (missing or duplicate id,
// unknown status, updatedAt before createdAt), yields an empty slice and an error wrapping ErrCorrupt; the file is
// not touched.
func (s *Store) Load() ([]service.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.WithField("path", s.path).Debug("store file not found, creating")
		if err := s.Save(nil); err != nil {
			return []service.Task{}, err
		}
		return []service.Task{}, nil
	}
	if err != nil {
		return []service.Task{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return []service.Task{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	if err := validate(tasks); err != nil {
		return []service.Task{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	for i := range tasks {
		tasks[i].SerialNumber = i + 1
	}

	s.log.WithFields(logrus.Fields{"path": s.path, "count": len(tasks)}).Debug("loaded tasks")
	return tasks, nil
}

// validate checks the record invariants a hand-edited file can break.
func validate(tasks []service.Task) error {
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		switch {
		case t.ID == "":
			return fmt.Errorf("task %d: missing id", i+1)
		case seen[t.ID]:
			return fmt.Errorf("task %d: duplicate id %s", i+1, t.ID)
		case !t.Status.Valid():
			return fmt.Errorf("task %d: invalid status %q", i+1, t.Status)
		case t.UpdatedAt.Before(t.CreatedAt):
			return fmt.Errorf("task %d: updatedAt before createdAt", i+1)
		}
		seen[t.ID] = true
	}
	return nil
}

// Save replaces the file content with tasks in a single write.
func (s *Store) Save(tasks []service.Task) error {
	if tasks == nil {
		tasks = []service.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	s.log.WithFields(logrus.Fields{"path": s.path, "count": len(tasks)}).Debug("saved tasks")
	return nil
}

// Add appends a new todo task and persists the store.
func (s *Store) Add(description string) (service.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return service.Task{}, err
	}

	id := s.newID()
	for _, t := range tasks {
		if t.ID == id {
			return service.Task{}, fmt.Errorf("duplicate task id: %s", id)
		}
	}

	now := s.now()
	task := service.Task{
		ID:           id,
		Description:  description,
		Status:       service.StatusTodo,
		CreatedAt:    now,
		UpdatedAt:    now,
		SerialNumber: len(tasks) + 1,
	}

	if err := s.Save(append(tasks, task)); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// SetStatus sets the status of the task matching ref.
func (s *Store) SetStatus(ref service.Reference, status service.Status) (service.Task, error) {
	if !status.Valid() {
		return service.Task{}, fmt.Errorf("invalid status: %s", status)
	}
	return s.mutate(ref, func(t *service.Task) {
		t.Status = status
	})
}

// UpdateDescription replaces the description of the task whose id is exactly id.
// Positions are not accepted here.
func (s *Store) UpdateDescription(id, description string) (service.Task, error) {
	return s.mutate(service.IDReference(id), func(t *service.Task) {
		t.Description = description
	})
}

// Delete removes the task matching ref.
func (s *Store) Delete(ref service.Reference) (service.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return service.Task{}, err
	}

	i := indexOf(tasks, ref)
	if i < 0 {
		return service.Task{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	removed := tasks[i]

	remaining := append(tasks[:i:i], tasks[i+1:]...)
	if err := s.Save(remaining); err != nil {
		return service.Task{}, err
	}

	s.log.WithField("id", removed.ID).Debug("deleted task")
	return removed, nil
}

// mutate loads, applies fn to the referenced task, stamps it and saves.
// Nothing is written when the task is not found.
func (s *Store) mutate(ref service.Reference, fn func(*service.Task)) (service.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return service.Task{}, err
	}

	i := indexOf(tasks, ref)
	if i < 0 {
		return service.Task{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	fn(&tasks[i])
	tasks[i].Touch(s.now())

	if err := s.Save(tasks); err != nil {
		return service.Task{}, err
	}
	return tasks[i], nil
}

var _ service.Service = (*Store)(nil)
