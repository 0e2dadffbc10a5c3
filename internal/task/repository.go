package task

import "todo-list-app/internal/model"

// Repository persists the whole task collection as one unit.
type Repository interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
	// Update runs load, fn, save as one critical section. Nothing is
	// written when fn returns an error.
	Update(fn func(tasks []model.Task) ([]model.Task, error)) error
}
