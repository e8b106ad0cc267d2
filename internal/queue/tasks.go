package queue

import (
	"encoding/json"

	"github.com/veltrachem-web/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotify notifies the operations mailbox about a new
	// contact submission.
	TaskContactNotify = constants.TaskContactNotify
)

// ContactNotifyPayload carries the contact row to notify about.
type ContactNotifyPayload struct {
	ContactID uint `json:"contact_id"`
}

// NewContactNotifyTask builds an asynq task for a contact notification.
func NewContactNotifyTask(payload ContactNotifyPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotify, data), nil
}
