package task

import (
	"fmt"
	"strings"
	"time"

	"todo-list-app/internal/ids"
	"todo-list-app/internal/model"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateInput struct {
	Title       string
	Description string
	DueDate     *string
	Priority    string
}

func (s *Service) Create(in CreateInput) (model.Task, error) {
	title, err := ValidateTitle(in.Title)
	if err != nil {
		return model.Task{}, err
	}

	priority := model.PriorityMedium
	if strings.TrimSpace(in.Priority) != "" {
		if priority, err = ValidatePriority(in.Priority); err != nil {
			return model.Task{}, err
		}
	}

	var due *string
	if in.DueDate != nil && strings.TrimSpace(*in.DueDate) != "" {
		d, err := ValidateDueDate(*in.DueDate)
		if err != nil {
			return model.Task{}, err
		}
		due = &d
	}

	var created model.Task
	err = s.repo.Update(func(tasks []model.Task) ([]model.Task, error) {
		now := s.now().UTC()
		existing := make([]int64, 0, len(tasks))
		for _, t := range tasks {
			existing = append(existing, t.ID)
		}
		created = model.Task{
			ID:          ids.FromTime(now, existing),
			Title:       title,
			Description: in.Description,
			Completed:   false,
			DueDate:     due,
			Priority:    priority,
			CreatedAt:   now.Format(model.CreatedAtLayout),
		}
		return append(tasks, created), nil
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

func (s *Service) List() ([]model.Task, error) {
	tasks, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Service) Update(id int64, p Patch) error {
	var (
		title, description, due string
		priority                model.Priority
		err                     error
	)
	if p.Title.Present() {
		title = strings.TrimSpace(p.Title.Value)
	}
	if p.Description.Present() {
		description = p.Description.Value
	}
	if p.DueDate.Present() && strings.TrimSpace(p.DueDate.Value) != "" {
		if due, err = ValidateDueDate(p.DueDate.Value); err != nil {
			return err
		}
	}
	if p.Priority.Present() && strings.TrimSpace(p.Priority.Value) != "" {
		if priority, err = ValidatePriority(p.Priority.Value); err != nil {
			return err
		}
	}

	err = s.repo.Update(func(tasks []model.Task) ([]model.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, model.ErrNotFound
		}
		t := &tasks[i]
		if title != "" {
			t.Title = title
		}
		if description != "" {
			t.Description = description
		}
		if due != "" {
			t.DueDate = &due
		}
		if priority != "" {
			t.Priority = priority
		}
		if p.Completed.Present() {
			t.Completed = p.Completed.Value
		}
		return tasks, nil
	})
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	err := s.repo.Update(func(tasks []model.Task) ([]model.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, model.ErrNotFound
		}
		return append(tasks[:i], tasks[i+1:]...), nil
	})
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

func indexOf(tasks []model.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
