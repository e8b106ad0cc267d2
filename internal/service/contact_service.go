package service

import (
	"net/mail"
	"strings"

	"github.com/veltrachem-web/internal/logger"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"

	"gorm.io/gorm"
)

// ContactNotifier delivers the best-effort notification that follows a
// persisted contact submission.
type ContactNotifier interface {
	NotifyContact(contact *models.Contact) error
}

// ContactService handles contact-form intake and the admin inbox.
type ContactService struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a contact service. notifier may be nil.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

// ContactInput is a raw contact-form submission.
type ContactInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Phone   string `json:"phone" form:"phone"`
	Product string `json:"product" form:"product"`
	Message string `json:"message" form:"message"`
}

// Validate checks the submission and reports every failing field at
// once.
func (in ContactInput) Validate() FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(in.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters long."
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = "Email address is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Enter a valid email address."
	}
	if len(strings.TrimSpace(in.Message)) < 10 {
		errs["message"] = "Message must be at least 10 characters long."
	}
	if !models.IsValidProductInterest(in.Product) {
		errs["product"] = "Select a valid choice."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submit validates and persists a submission, then fires the
// notification. Notification failure is logged and swallowed; the
// visitor still gets a success result.
func (s *ContactService) Submit(input ContactInput) (*models.Contact, error) {
	if errs := input.Validate(); errs != nil {
		return nil, errs
	}

	contact := models.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Company: strings.TrimSpace(input.Company),
		Phone:   strings.TrimSpace(input.Phone),
		Product: strings.TrimSpace(input.Product),
		Message: strings.TrimSpace(input.Message),
	}

	err := s.repo.Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(&contact)
	})
	if err != nil {
		return nil, err
	}

	// Post-commit side effect. Never rolls the row back.
	if s.notifier != nil {
		if err := s.notifier.NotifyContact(&contact); err != nil {
			logger.Warnw("contact_notification_failed",
				"contact_id", contact.ID,
				"error", err,
			)
		}
	}

	return &contact, nil
}

// List returns contact requests for the admin inbox.
func (s *ContactService) List(filter repository.ContactListFilter) ([]models.Contact, int64, error) {
	return s.repo.List(filter)
}

// Get fetches one contact request.
func (s *ContactService) Get(id string) (*models.Contact, error) {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}
	return contact, nil
}

// MarkRead marks a batch of requests read.
func (s *ContactService) MarkRead(ids []uint) (int64, error) {
	return s.repo.SetRead(ids, true)
}

// MarkUnread marks a batch of requests unread.
func (s *ContactService) MarkUnread(ids []uint) (int64, error) {
	return s.repo.SetRead(ids, false)
}

// Delete removes a contact request.
func (s *ContactService) Delete(id string) error {
	contact, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// CountUnread counts unread requests.
func (s *ContactService) CountUnread() (int64, error) {
	return s.repo.CountUnread()
}
