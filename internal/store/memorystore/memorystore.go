// Package memorystore keeps the task collection in process memory.
package memorystore

import (
	"sync"

	"todo-list-app/internal/model"
)

type TaskStore struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func NewTaskStore(seed ...model.Task) *TaskStore {
	return &TaskStore{tasks: clone(seed)}
}

func (s *TaskStore) Load() ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tasks), nil
}

func (s *TaskStore) Save(tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = clone(tasks)
	return nil
}

func (s *TaskStore) Update(fn func([]model.Task) ([]model.Task, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(clone(s.tasks))
	if err != nil {
		return err
	}
	s.tasks = clone(next)
	return nil
}

// clone copies tasks deeply enough that callers cannot alias stored DueDate
// pointers.
func clone(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.DueDate != nil {
			d := *t.DueDate
			t.DueDate = &d
		}
		out[i] = t
	}
	return out
}
