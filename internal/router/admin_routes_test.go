package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/veltrachem-web/internal/config"
	"github.com/veltrachem-web/internal/http/handlers/admin"
	"github.com/veltrachem-web/internal/models"
	"github.com/veltrachem-web/internal/provider"
	"github.com/veltrachem-web/internal/repository"
	"github.com/veltrachem-web/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newAdminTestRouter(t *testing.T, name string) (*gorm.DB, *gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Contact{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-0123456789abcdef"
	cfg.JWT.ExpireHours = 1

	adminRepo := repository.NewAdminRepository(db)
	authSvc := service.NewAuthService(cfg, adminRepo)
	if _, err := authSvc.CreateAdmin("boss", "boss-password-123", true); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	_, token, _, err := authSvc.Login("boss", "boss-password-123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	container := &provider.Container{
		Config:         cfg,
		AdminRepo:      adminRepo,
		AuthService:    authSvc,
		ContactService: service.NewContactService(repository.NewContactRepository(db), nil),
	}
	handler := admin.New(container)

	r := gin.New()
	authorized := r.Group("/api/v1/admin")
	authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, adminRepo))
	authorized.GET("/contacts", handler.ListContacts)
	authorized.GET("/contacts/unread-count", handler.UnreadContactCount)
	authorized.POST("/contacts/mark-read", handler.MarkContactsRead)
	return db, r, token
}

type adminEnvelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
		Total    int64 `json:"total"`
	} `json:"pagination"`
}

func decodeAdminEnvelope(t *testing.T, w *httptest.ResponseRecorder) adminEnvelope {
	t.Helper()
	var env adminEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response failed: %v (body %s)", err, w.Body.String())
	}
	return env
}

func TestAdminContactsRejectsMissingToken(t *testing.T) {
	_, r, _ := newAdminTestRouter(t, "admin_auth")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts", nil)
	r.ServeHTTP(w, req)

	env := decodeAdminEnvelope(t, w)
	if env.StatusCode != 401 {
		t.Fatalf("expected status_code 401, got %d", env.StatusCode)
	}
}

func TestAdminContactsListAndBulkMarkRead(t *testing.T) {
	db, r, token := newAdminTestRouter(t, "admin_contacts")

	contacts := []models.Contact{
		{Name: "Jane Doe", Email: "jane@example.com", Message: "Need a quote for triazine."},
		{Name: "John Roe", Email: "john@example.com", Message: "Requesting a sulphonate sample."},
	}
	for i := range contacts {
		if err := db.Create(&contacts[i]).Error; err != nil {
			t.Fatalf("create contact failed: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts?page=1&page_size=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	env := decodeAdminEnvelope(t, w)
	if env.StatusCode != 0 {
		t.Fatalf("list failed: %s", w.Body.String())
	}
	if env.Pagination.Total != 2 {
		t.Fatalf("expected 2 contacts, got %d", env.Pagination.Total)
	}

	body, _ := json.Marshal(gin.H{"ids": []uint{contacts[0].ID, contacts[1].ID}})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/contacts/mark-read", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	env = decodeAdminEnvelope(t, w)
	if env.StatusCode != 0 {
		t.Fatalf("mark-read failed: %s", w.Body.String())
	}
	var result struct {
		Updated int64 `json:"updated"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if result.Updated != 2 {
		t.Fatalf("expected 2 updated, got %d", result.Updated)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts/unread-count", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	env = decodeAdminEnvelope(t, w)
	var count struct {
		Unread int64 `json:"unread"`
	}
	if err := json.Unmarshal(env.Data, &count); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if count.Unread != 0 {
		t.Fatalf("expected 0 unread after bulk mark-read, got %d", count.Unread)
	}
}
