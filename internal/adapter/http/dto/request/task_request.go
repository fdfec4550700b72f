package request

import (
	"time"

	"oficina_os/internal/domain/entities"
)

// TaskRequest is the creation payload for a task. Priority defaults to
// media downstream when left empty; due_at is optional and means "no
// deadline" when absent.
type TaskRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	DueAt           *time.Time `json:"due_at"`
	RelatedOrderID  *int64     `json:"related_order_id"`
	RelatedClientID *int64     `json:"related_client_id"`
}

// TaskUpdateRequest is the generic update payload. It always names the
// target status explicitly; the use case validates the transition.
type TaskUpdateRequest struct {
	Title           string     `json:"title" binding:"required"`
	Description     string     `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status" binding:"required"`
	DueAt           *time.Time `json:"due_at"`
	RelatedOrderID  *int64     `json:"related_order_id"`
	RelatedClientID *int64     `json:"related_client_id"`
}

func (r TaskRequest) ResolvePriority() entities.TaskPriority {
	return entities.TaskPriority(r.Priority)
}

func (r TaskUpdateRequest) ResolvePriority() entities.TaskPriority {
	return entities.TaskPriority(r.Priority)
}

func (r TaskUpdateRequest) ResolveStatus() entities.TaskStatus {
	return entities.TaskStatus(r.Status)
}
