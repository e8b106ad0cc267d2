package worker

import (
	"context"
	"encoding/json"

	"github.com/veltrachem-web/internal/logger"
	"github.com/veltrachem-web/internal/provider"
	"github.com/veltrachem-web/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer over the container.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches task handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContactNotify, c.handleContactNotify)
}

func (c *Consumer) handleContactNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.ContactNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_contact_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.ContactID == 0 {
		logger.Debugw("worker_contact_notify_skip_invalid_payload", "contact_id", payload.ContactID)
		return nil
	}
	if err := c.NotificationService.DeliverContactNotification(payload.ContactID); err != nil {
		// Delivery is best-effort; log and drop rather than retry
		// against a dead mailbox.
		logger.Warnw("worker_contact_notify_send_failed", "contact_id", payload.ContactID, "error", err)
		return nil
	}
	logger.Infow("worker_contact_notify_sent", "contact_id", payload.ContactID)
	return nil
}
