package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/modumal-backend/internal/app/repository"
	"github.com/ikkim/modumal-backend/internal/app/service"
	"github.com/ikkim/modumal-backend/internal/db"
	"github.com/ikkim/modumal-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testControllerJWTSecret = "test-jwt-secret"

func setupAuthControllerTest(t *testing.T) *gin.Engine {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(
		userRepo,
		testControllerJWTSecret,
		15*time.Minute,
		7*24*time.Hour,
	)
	authController := NewAuthController(authService)
	authMiddleware := middleware.NewAuthMiddleware(testControllerJWTSecret)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", authController.Register)
	router.POST("/auth/login", authController.Login)
	router.POST("/auth/logout", authMiddleware.Authenticate(), authController.Logout)
	router.GET("/auth/me", authMiddleware.Authenticate(), authController.GetMe)

	return router
}

func registerTestUser(t *testing.T, router *gin.Engine, email string) string {
	jsonBody, _ := json.Marshal(map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response["access_token"].(string)
}

func TestAuthController_Register(t *testing.T) {
	router := setupAuthControllerTest(t)

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"email":    "test@example.com",
		"password": "password123",
		"name":     "Test User",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["access_token"])
	assert.NotEmpty(t, response["refresh_token"])

	user := response["user"].(map[string]interface{})
	assert.Equal(t, "test@example.com", user["email"])
	assert.NotContains(t, user, "password_hash", "hash never serialized")
}

func TestAuthController_Register_ValidationFailures(t *testing.T) {
	router := setupAuthControllerTest(t)

	tests := []struct {
		name      string
		body      map[string]interface{}
		wantField string
	}{
		{
			name:      "Invalid email",
			body:      map[string]interface{}{"email": "not-an-email", "password": "password123", "name": "Test"},
			wantField: "email",
		},
		{
			name:      "Short password",
			body:      map[string]interface{}{"email": "test@example.com", "password": "short", "name": "Test"},
			wantField: "password",
		},
		{
			name:      "Missing name",
			body:      map[string]interface{}{"email": "test@example.com", "password": "password123"},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonBody, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			fields := response["fields"].(map[string]interface{})
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	router := setupAuthControllerTest(t)

	registerTestUser(t, router, "test@example.com")

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"email":    "test@example.com",
		"password": "password456",
		"name":     "Another User",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_EMAIL_EXISTS", response["error"])
}

func TestAuthController_Login(t *testing.T) {
	router := setupAuthControllerTest(t)

	registerTestUser(t, router, "test@example.com")

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"email":    "test@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["access_token"])
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	router := setupAuthControllerTest(t)

	registerTestUser(t, router, "test@example.com")

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"email":    "test@example.com",
		"password": "wrong-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_INVALID_CREDENTIALS", response["error"])
}

func TestAuthController_GetMe(t *testing.T) {
	router := setupAuthControllerTest(t)

	token := registerTestUser(t, router, "test@example.com")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "test@example.com", user["email"])
}

func TestAuthController_GetMe_Unauthenticated(t *testing.T) {
	router := setupAuthControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_Logout(t *testing.T) {
	router := setupAuthControllerTest(t)

	token := registerTestUser(t, router, "test@example.com")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Without Redis configured the endpoint still succeeds
	assert.Equal(t, http.StatusOK, w.Code)
}
