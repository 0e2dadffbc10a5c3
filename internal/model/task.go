package model

import (
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("not found")

// CreatedAtLayout is the UTC, millisecond precision layout used for
// Task.CreatedAt.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// DueDateLayout is the calendar date layout accepted for Task.DueDate.
const DueDateLayout = "2006-01-02"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities from low (1) to high (3). Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	DueDate     *string  `json:"dueDate"`
	Priority    Priority `json:"priority"`
	CreatedAt   string   `json:"createdAt"`
}

// CreatedTime parses CreatedAt. A malformed value yields the zero time.
func (t Task) CreatedTime() time.Time {
	ts, err := time.Parse(time.RFC3339Nano, t.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}
