package service

import (
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/queue"
	"github.com/veltrachem-web/internal/repository"
)

// NotificationService routes contact notifications to the operations
// mailbox. With the queue enabled delivery happens in the worker;
// otherwise the mail is sent inline, still best-effort.
type NotificationService struct {
	email       *EmailService
	queueClient *queue.Client
	contactRepo repository.ContactRepository
	notifyEmail string
}

// NewNotificationService creates a notification service.
func NewNotificationService(email *EmailService, queueClient *queue.Client, contactRepo repository.ContactRepository, notifyEmail string) *NotificationService {
	return &NotificationService{
		email:       email,
		queueClient: queueClient,
		contactRepo: contactRepo,
		notifyEmail: notifyEmail,
	}
}

// NotifyContact schedules or sends the notification for a persisted
// contact row.
func (s *NotificationService) NotifyContact(contact *models.Contact) error {
	if contact == nil || s.notifyEmail == "" {
		return nil
	}
	if s.queueClient.Enabled() {
		return s.queueClient.EnqueueContactNotify(queue.ContactNotifyPayload{ContactID: contact.ID})
	}
	return s.email.SendContactNotification(s.notifyEmail, contact)
}

// DeliverContactNotification sends the mail for a queued task. A
// contact deleted before delivery is not an error.
func (s *NotificationService) DeliverContactNotification(contactID uint) error {
	contact, err := s.contactRepo.GetByID(formatUint(contactID))
	if err != nil {
		return err
	}
	if contact == nil {
		return nil
	}
	return s.email.SendContactNotification(s.notifyEmail, contact)
}
