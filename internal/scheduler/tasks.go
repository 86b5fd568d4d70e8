package scheduler

import (
	"encoding/json"

	"leadintel_backend/internal/crmsync"

	"github.com/hibiken/asynq"
)

const TaskCrmLeadUpdate = "crmsync.lead.update"

func NewCrmLeadUpdateTask(payload crmsync.UpdatePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCrmLeadUpdate, data), nil
}

func ParseCrmLeadUpdatePayload(task *asynq.Task) (crmsync.UpdatePayload, error) {
	var payload crmsync.UpdatePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return crmsync.UpdatePayload{}, err
	}
	return payload, nil
}
