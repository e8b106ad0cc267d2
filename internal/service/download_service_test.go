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

func newDownloadTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DownloadEmail{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestDeriveDocumentName(t *testing.T) {
	cases := []struct {
		fileURL string
		want    string
	}{
		{"https://veltrachem.com/uploads/document/2026/01/spec-sheet.pdf", "spec-sheet.pdf"},
		{"/uploads/coa.pdf", "coa.pdf"},
		{"plainname.pdf", "plainname.pdf"},
		{"", "Unknown"},
	}
	for _, tc := range cases {
		if got := DeriveDocumentName(tc.fileURL); got != tc.want {
			t.Fatalf("DeriveDocumentName(%q) = %q, want %q", tc.fileURL, got, tc.want)
		}
	}
}

func TestRecordRequiresEmail(t *testing.T) {
	db := newDownloadTestDB(t, "download_required")
	svc := NewDownloadService(repository.NewDownloadEmailRepository(db))

	for _, email := range []string{"", "   "} {
		if _, err := svc.Record(email, "/uploads/tds.pdf", "agent"); !errors.Is(err, ErrEmailRequired) {
			t.Fatalf("expected ErrEmailRequired for %q, got: %v", email, err)
		}
	}

	var count int64
	if err := db.Model(&models.DownloadEmail{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected captures must not persist, got %d rows", count)
	}
}

func TestRecordStoresDerivedNameAndUserAgent(t *testing.T) {
	db := newDownloadTestDB(t, "download_record")
	svc := NewDownloadService(repository.NewDownloadEmailRepository(db))

	record, err := svc.Record("buyer@example.com", "https://veltrachem.com/uploads/spec-sheet.pdf", "Mozilla/5.0 test")
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if record.DocumentName != "spec-sheet.pdf" {
		t.Fatalf("wrong document name: %q", record.DocumentName)
	}
	if record.UserAgent != "Mozilla/5.0 test" {
		t.Fatalf("wrong user agent: %q", record.UserAgent)
	}

	var stored models.DownloadEmail
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if stored.Email != "buyer@example.com" {
		t.Fatalf("wrong email: %q", stored.Email)
	}
}

func TestRecordWithoutFileURL(t *testing.T) {
	db := newDownloadTestDB(t, "download_nofile")
	svc := NewDownloadService(repository.NewDownloadEmailRepository(db))

	record, err := svc.Record("buyer@example.com", "", "")
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if record.DocumentName != "Unknown" {
		t.Fatalf("expected Unknown document name, got %q", record.DocumentName)
	}
}
