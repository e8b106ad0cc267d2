package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type failingNotifier struct {
	calls int
}

func (n *failingNotifier) NotifyContact(contact *models.Contact) error {
	n.calls++
	return errors.New("smtp connection refused")
}

func newContactTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestContactValidateReportsAllErrors(t *testing.T) {
	input := ContactInput{Name: "J", Email: "", Message: "hi"}
	errs := input.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	if errs["name"] != "Name must be at least 2 characters long." {
		t.Fatalf("wrong name error: %q", errs["name"])
	}
	if errs["email"] != "Email address is required." {
		t.Fatalf("wrong email error: %q", errs["email"])
	}
	if errs["message"] != "Message must be at least 10 characters long." {
		t.Fatalf("wrong message error: %q", errs["message"])
	}
}

func TestContactValidateEmailFormat(t *testing.T) {
	input := ContactInput{Name: "Jane Doe", Email: "not-an-email", Message: "I would like a quote."}
	errs := input.Validate()
	if errs["email"] != "Enter a valid email address." {
		t.Fatalf("wrong email error: %q", errs["email"])
	}
}

func TestContactValidateProductChoice(t *testing.T) {
	base := ContactInput{Name: "Jane Doe", Email: "jane@example.com", Message: "I would like a quote."}

	input := base
	input.Product = "NOT A REAL PRODUCT"
	errs := input.Validate()
	if errs["product"] != "Select a valid choice." {
		t.Fatalf("wrong product error: %q", errs["product"])
	}

	input.Product = ""
	if errs := input.Validate(); errs != nil {
		t.Fatalf("empty product interest should be allowed, got: %v", errs)
	}

	input.Product = "MEA TRIAZINE 78%"
	if errs := input.Validate(); errs != nil {
		t.Fatalf("listed product interest should be allowed, got: %v", errs)
	}
}

func TestContactValidateErrorsSatisfyErrValidation(t *testing.T) {
	input := ContactInput{Name: "J"}
	errs := input.Validate()
	if !errors.Is(errs, ErrValidation) {
		t.Fatalf("field errors should match ErrValidation")
	}
}

func TestSubmitPersistsAndSwallowsNotifierFailure(t *testing.T) {
	db := newContactTestDB(t, "contact_submit")
	notifier := &failingNotifier{}
	svc := NewContactService(repository.NewContactRepository(db), notifier)

	contact, err := svc.Submit(ContactInput{
		Name:    "  Jane Doe  ",
		Email:   "jane@example.com",
		Message: "Please send the MEA Triazine datasheet.",
	})
	if err != nil {
		t.Fatalf("Submit should succeed despite notifier failure, got: %v", err)
	}
	if notifier.calls != 1 {
		t.Fatalf("expected one notification attempt, got %d", notifier.calls)
	}
	if contact.Name != "Jane Doe" {
		t.Fatalf("name not trimmed: %q", contact.Name)
	}

	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted contact, got %d", count)
	}
	var stored models.Contact
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if stored.IsRead {
		t.Fatalf("new contact should start unread")
	}
}

func TestSubmitRejectsInvalidWithoutPersisting(t *testing.T) {
	db := newContactTestDB(t, "contact_invalid")
	svc := NewContactService(repository.NewContactRepository(db), nil)

	_, err := svc.Submit(ContactInput{Name: "J", Email: "", Message: "hi"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got: %v", err)
	}

	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid submissions must not persist, got %d rows", count)
	}
}

func TestMarkReadAndUnread(t *testing.T) {
	db := newContactTestDB(t, "contact_mark")
	svc := NewContactService(repository.NewContactRepository(db), nil)

	rows := []models.Contact{
		{Name: "A", Email: "a@example.com", Message: "first message body"},
		{Name: "B", Email: "b@example.com", Message: "second message body"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	updated, err := svc.MarkRead([]uint{rows[0].ID, rows[1].ID})
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 rows updated, got %d", updated)
	}

	unread, err := svc.CountUnread()
	if err != nil {
		t.Fatalf("CountUnread error: %v", err)
	}
	if unread != 0 {
		t.Fatalf("expected 0 unread, got %d", unread)
	}

	if _, err := svc.MarkUnread([]uint{rows[0].ID}); err != nil {
		t.Fatalf("MarkUnread error: %v", err)
	}
	unread, err = svc.CountUnread()
	if err != nil {
		t.Fatalf("CountUnread error: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread, got %d", unread)
	}
}
