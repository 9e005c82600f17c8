package playground

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zen-api/config"
	"zen-api/database"
	"zen-api/middleware"
	"zen-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r
}

func createUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		UniqueInfo:   "test",
		AdminLevel:   models.AdminLevelUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, asUser *models.User) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if asUser != nil {
		token, err := middleware.GenerateToken(asUser.ID, time.Hour)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveSnippet(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "alice")

	w := doRequest(t, r, http.MethodPost, "/api/v1/playground/save",
		gin.H{"htmlCode": "<h1>hi</h1>"}, &user)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	var snippet models.CodeSnippet
	if err := json.Unmarshal(w.Body.Bytes(), &snippet); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if snippet.Title != "Untitled Snippet" {
		t.Errorf("title = %q, want the default", snippet.Title)
	}
}

func TestSaveSnippetAllEmpty(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "bob")

	w := doRequest(t, r, http.MethodPost, "/api/v1/playground/save",
		gin.H{"title": "empty"}, &user)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetSnippetsOwnOnly(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "carol")
	other := createUser(t, "dave")

	doRequest(t, r, http.MethodPost, "/api/v1/playground/save", gin.H{"cssCode": "a {}"}, &user)
	doRequest(t, r, http.MethodPost, "/api/v1/playground/save", gin.H{"jsCode": "let x;"}, &other)

	w := doRequest(t, r, http.MethodGet, "/api/v1/playground/", nil, &user)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var snippets []models.CodeSnippet
	if err := json.Unmarshal(w.Body.Bytes(), &snippets); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("snippet count = %d, want 1", len(snippets))
	}
	if snippets[0].UserID != user.ID {
		t.Errorf("snippet owner = %d, want %d", snippets[0].UserID, user.ID)
	}
}

func TestDeleteSnippetScopedToOwner(t *testing.T) {
	r := setupRouter(t)
	user := createUser(t, "erin")
	other := createUser(t, "frank")

	w := doRequest(t, r, http.MethodPost, "/api/v1/playground/save", gin.H{"htmlCode": "<p>x</p>"}, &user)
	var snippet models.CodeSnippet
	if err := json.Unmarshal(w.Body.Bytes(), &snippet); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// someone else's snippet looks like it does not exist
	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/playground/%d", snippet.ID), nil, &other)
	if w.Code != http.StatusNotFound {
		t.Errorf("stranger delete status = %d, want 404", w.Code)
	}

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/playground/%d", snippet.ID), nil, &user)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d, want 200", w.Code)
	}

	var count int64
	database.DB.Model(&models.CodeSnippet{}).Where("id = ?", snippet.ID).Count(&count)
	if count != 0 {
		t.Errorf("snippet rows = %d, want 0", count)
	}
}
