package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/config"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/provider"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newDownloadTestHandler(t *testing.T, name string) (*gorm.DB, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.DownloadEmail{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	container := &provider.Container{
		Config:          &config.Config{},
		DownloadService: service.NewDownloadService(repository.NewDownloadEmailRepository(db)),
	}
	return db, New(container)
}

func performSaveEmail(h *Handler, body string, userAgent string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/save-email/", h.SaveEmail)

	req := httptest.NewRequest(http.MethodPost, "/save-email/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveEmailSuccess(t *testing.T) {
	db, h := newDownloadTestHandler(t, "save_email_ok")

	w := performSaveEmail(h, `{"email":"buyer@example.com","file_url":"/uploads/spec-sheet.pdf"}`, "test-agent")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	if body["message"] != "Email saved successfully" {
		t.Fatalf("wrong message: %v", body["message"])
	}

	var record models.DownloadEmail
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if record.DocumentName != "spec-sheet.pdf" {
		t.Fatalf("wrong document name: %q", record.DocumentName)
	}
	if record.UserAgent != "test-agent" {
		t.Fatalf("wrong user agent: %q", record.UserAgent)
	}
}

func TestSaveEmailMissingEmail(t *testing.T) {
	db, h := newDownloadTestHandler(t, "save_email_missing")

	w := performSaveEmail(h, `{"file_url":"/uploads/spec-sheet.pdf"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["success"] != false {
		t.Fatalf("expected failure body, got %v", body)
	}
	if body["error"] != "Email is required" {
		t.Fatalf("wrong error: %v", body["error"])
	}

	var count int64
	if err := db.Model(&models.DownloadEmail{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected capture persisted %d rows", count)
	}
}

func TestSaveEmailUnknownDocumentName(t *testing.T) {
	db, h := newDownloadTestHandler(t, "save_email_unknown")

	w := performSaveEmail(h, `{"email":"buyer@example.com"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var record models.DownloadEmail
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if record.DocumentName != "Unknown" {
		t.Fatalf("expected Unknown, got %q", record.DocumentName)
	}
}
