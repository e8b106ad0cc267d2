package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
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

func newContactTestHandler(t *testing.T, name string) (*gorm.DB, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	container := &provider.Container{
		Config:         &config.Config{},
		ContactService: service.NewContactService(repository.NewContactRepository(db), nil),
	}
	return db, New(container)
}

func performContactAjax(h *Handler, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/contact/ajax/", h.ContactAjax)

	req := httptest.NewRequest(http.MethodPost, "/contact/ajax/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactAjaxSuccess(t *testing.T) {
	db, h := newContactTestHandler(t, "contact_ajax_ok")

	w := performContactAjax(h, `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"message": "Please quote MEA Triazine for Q4 delivery.",
		"product": "MEA TRIAZINE 78%"
	}`)
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
	if msg, _ := body["message"].(string); !strings.Contains(msg, "Thank you for contacting us") {
		t.Fatalf("wrong message: %v", body["message"])
	}

	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted contact, got %d", count)
	}
}

func TestContactAjaxValidationErrors(t *testing.T) {
	db, h := newContactTestHandler(t, "contact_ajax_invalid")

	w := performContactAjax(h, `{"name":"J","email":"","message":"hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Success {
		t.Fatalf("expected failure body")
	}
	if len(body.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %v", body.Errors)
	}
	if body.Errors["name"] != "Name must be at least 2 characters long." {
		t.Fatalf("wrong name error: %q", body.Errors["name"])
	}
	if body.Errors["email"] != "Email address is required." {
		t.Fatalf("wrong email error: %q", body.Errors["email"])
	}
	if body.Errors["message"] != "Message must be at least 10 characters long." {
		t.Fatalf("wrong message error: %q", body.Errors["message"])
	}

	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("invalid submission persisted %d rows", count)
	}
}

func TestContactFormPostReturnsJSONForAjaxClients(t *testing.T) {
	_, h := newContactTestHandler(t, "contact_form_xhr")

	r := gin.New()
	r.POST("/contact/", h.Contact)

	form := url.Values{}
	form.Set("name", "Jane Doe")
	form.Set("email", "jane@example.com")
	form.Set("message", "Please quote MEA Triazine for Q4 delivery.")

	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected json body for XHR client: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
}
