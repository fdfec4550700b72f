package entities

import (
	"strings"
	"time"
)

// TaskStatus represents the lifecycle of a workshop task.
//
// A pending task may jump straight to concluida/cancelada; passing through
// em_andamento is not required. Terminal states accept no further change.

type TaskStatus string

const (
	TaskStatusPendente    TaskStatus = "pendente"
	TaskStatusEmAndamento TaskStatus = "em_andamento"
	TaskStatusConcluida   TaskStatus = "concluida"
	TaskStatusCancelada   TaskStatus = "cancelada"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusPendente:    {TaskStatusEmAndamento, TaskStatusConcluida, TaskStatusCancelada},
	TaskStatusEmAndamento: {TaskStatusConcluida, TaskStatusCancelada},
	TaskStatusConcluida:   {},
	TaskStatusCancelada:   {},
}

func (s TaskStatus) Valid() bool {
	_, ok := taskTransitions[s]
	return ok
}

func (s TaskStatus) Terminal() bool {
	next, ok := taskTransitions[s]
	return ok && len(next) == 0
}

func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if s == next {
		// Keeping the current status is not a transition; it is allowed
		// whenever the task is still open to updates at all.
		return !s.Terminal()
	}
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityBaixa TaskPriority = "baixa"
	TaskPriorityMedia TaskPriority = "media"
	TaskPriorityAlta  TaskPriority = "alta"
)

func (p TaskPriority) Valid() bool {
	return p == TaskPriorityBaixa || p == TaskPriorityMedia || p == TaskPriorityAlta
}

// Task is a lighter-weight to-do item, optionally linked to an order or a
// client, with its own status lifecycle and an optional due date.
//
// Storage model (DynamoDB):
//   - PK: id (number, assigned from the counters table)
//
// DueAt absent means "no deadline"; such tasks are never overdue.
type Task struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	Priority        TaskPriority `json:"priority"`
	Status          TaskStatus   `json:"status"`
	DueAt           *time.Time   `json:"due_at,omitempty"`
	RelatedOrderID  *int64       `json:"related_order_id,omitempty"`
	RelatedClientID *int64       `json:"related_client_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ValidateDraft checks the creation preconditions for a task.
func (t Task) ValidateDraft() error {
	if strings.TrimSpace(t.Title) == "" {
		return newValidationError("title", "is required")
	}
	if t.Priority != "" && !t.Priority.Valid() {
		return newValidationError("priority", "must be baixa, media or alta")
	}
	return nil
}

// Transition validates a requested status against the adjacency table.
// Generic updates carry their target status through here, so arbitrary
// valid transitions can be driven by one update call.
func (t Task) Transition(next TaskStatus) error {
	if !next.Valid() {
		return newValidationError("status", "unknown status")
	}
	if !t.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{Entity: "task", From: string(t.Status), To: string(next)}
	}
	return nil
}
