package response

import (
	"testing"
	"time"

	"oficina_os/internal/domain/entities"
)

func TestFromTask(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)
	due := time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC)
	orderID := int64(42)

	task := entities.Task{
		ID:             1,
		Title:          "ligar para cliente",
		Priority:       entities.TaskPriorityAlta,
		Status:         entities.TaskStatusPendente,
		DueAt:          &due,
		RelatedOrderID: &orderID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromTask(task, now)
	if res.ID != 1 || res.Priority != "alta" || res.Status != "pendente" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Overdue || res.DueBucket != "overdue" {
		t.Fatalf("expected overdue classification, got %+v", res)
	}
	if res.RelatedOrderID == nil || *res.RelatedOrderID != 42 {
		t.Fatalf("unexpected related order id: %+v", res)
	}
}

func TestFromTask_NoDueDate(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)
	task := entities.Task{ID: 2, Title: "organizar bancada", Status: entities.TaskStatusConcluida}

	res := FromTask(task, now)
	if res.Overdue || res.DueBucket != "none" {
		t.Fatalf("task without due date must never be overdue, got %+v", res)
	}
	if res.DueAt != nil {
		t.Fatalf("expected nil due_at, got %+v", res.DueAt)
	}
}

func TestFromTasks(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)
	friday := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

	tasks := []entities.Task{
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b", DueAt: &friday},
	}

	res := FromTasks(tasks, now)
	if len(res) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(res))
	}
	if res[0].DueBucket != "none" || res[1].DueBucket != "week" {
		t.Fatalf("unexpected buckets: %+v", res)
	}
}
