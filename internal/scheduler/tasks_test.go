package scheduler

import (
	"testing"
	"time"

	"leadintel_backend/internal/crmsync"

	"github.com/hibiken/asynq"
)

func TestCrmLeadUpdateTaskRoundTrip(t *testing.T) {
	payload := crmsync.NewUpdatePayload("lead-1", 85, "hot", "0-30 days",
		time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

	task, err := NewCrmLeadUpdateTask(payload)
	if err != nil {
		t.Fatalf("NewCrmLeadUpdateTask returned error: %v", err)
	}
	if task.Type() != TaskCrmLeadUpdate {
		t.Fatalf("expected task type %q, got %q", TaskCrmLeadUpdate, task.Type())
	}

	parsed, err := ParseCrmLeadUpdatePayload(task)
	if err != nil {
		t.Fatalf("ParseCrmLeadUpdatePayload returned error: %v", err)
	}
	if parsed != payload {
		t.Fatalf("round trip mismatch: %+v != %+v", parsed, payload)
	}
}

func TestParseCrmLeadUpdatePayload_Malformed(t *testing.T) {
	task := asynq.NewTask(TaskCrmLeadUpdate, []byte("not json"))

	if _, err := ParseCrmLeadUpdatePayload(task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
