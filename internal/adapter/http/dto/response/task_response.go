package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

type TaskResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	DueAt           *time.Time `json:"due_at,omitempty"`
	Overdue         bool       `json:"overdue"`
	DueBucket       string     `json:"due_bucket"`
	RelatedOrderID  *int64     `json:"related_order_id,omitempty"`
	RelatedClientID *int64     `json:"related_client_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// FromTask renders a task with its due-date classification relative to the
// given instant. The instant comes from the caller so repeated rendering
// stays deterministic under test.
func FromTask(t entities.Task, now time.Time) TaskResponse {
	due := entities.ClassifyDue(t.DueAt, now)
	return TaskResponse{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Priority:        string(t.Priority),
		Status:          string(t.Status),
		DueAt:           t.DueAt,
		Overdue:         due.Overdue,
		DueBucket:       string(due.Bucket),
		RelatedOrderID:  t.RelatedOrderID,
		RelatedClientID: t.RelatedClientID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func FromTasks(tasks []entities.Task, now time.Time) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t, now))
	}
	return out
}
