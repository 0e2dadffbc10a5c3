package httpapi

import (
	"cmp"
	"errors"
	"net/url"
	"slices"
	"strings"

	"todo-list-app/internal/model"
)

type statusFilter string

const (
	statusAll       statusFilter = "all"
	statusActive    statusFilter = "active"
	statusCompleted statusFilter = "completed"
)

type sortOrder string

const (
	sortNewest   sortOrder = "newest"
	sortOldest   sortOrder = "oldest"
	sortPriority sortOrder = "priority"
	sortDueDate  sortOrder = "dueDate"
)

type listFilters struct {
	status       statusFilter
	hasCompleted bool
	completed    bool
	sort         sortOrder
}

func parseListFilters(q url.Values) (listFilters, error) {
	filters := listFilters{status: statusAll}

	if v := q.Get("status"); v != "" {
		switch s := statusFilter(strings.ToLower(strings.TrimSpace(v))); s {
		case statusAll, statusActive, statusCompleted:
			filters.status = s
		default:
			return listFilters{}, errors.New("status must be all, active or completed")
		}
	}

	if v := q.Get("completed"); v != "" {
		parsed, err := parseBoolStrict(v)
		if err != nil {
			return listFilters{}, errors.New("completed must be true or false")
		}
		filters.hasCompleted = true
		filters.completed = parsed
	}

	if v := q.Get("sort"); v != "" {
		switch s := sortOrder(strings.TrimSpace(v)); s {
		case sortNewest, sortOldest, sortPriority, sortDueDate:
			filters.sort = s
		default:
			return listFilters{}, errors.New("sort must be newest, oldest, priority or dueDate")
		}
	}

	return filters, nil
}

func filterTasks(tasks []model.Task, filters listFilters) []model.Task {
	if filters.status == statusAll && !filters.hasCompleted {
		return tasks
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch {
		case filters.status == statusActive && t.Completed:
			continue
		case filters.status == statusCompleted && !t.Completed:
			continue
		case filters.hasCompleted && t.Completed != filters.completed:
			continue
		}
		out = append(out, t)
	}
	return out
}

// sortTasks orders tasks in place. Ties keep stored order.
func sortTasks(tasks []model.Task, order sortOrder) {
	switch order {
	case sortNewest:
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return b.CreatedTime().Compare(a.CreatedTime())
		})
	case sortOldest:
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return a.CreatedTime().Compare(b.CreatedTime())
		})
	case sortPriority:
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		})
	case sortDueDate:
		// Undated tasks go last.
		slices.SortStableFunc(tasks, func(a, b model.Task) int {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return 0
			case a.DueDate == nil:
				return 1
			case b.DueDate == nil:
				return -1
			}
			return cmp.Compare(*a.DueDate, *b.DueDate)
		})
	}
}

func parseBoolStrict(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New("not a bool")
	}
}
