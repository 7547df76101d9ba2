package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"boolbnb/internal/domain"
	"boolbnb/internal/testutil"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	service := NewService(NewRepository(db))
	service.cost = bcrypt.MinCost

	router := gin.New()
	NewHandler(service).RegisterRoutes(&router.RouterGroup)
	return router, db
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createUser(t *testing.T, router *gin.Engine, email string) int64 {
	t.Helper()
	resp := performRequest(router, http.MethodPost, "/users", CreateRequest{
		Name: "Giulia", Email: email, Password: "correct horse", UserType: "owner",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.ID
}

func TestUserCRUD(t *testing.T) {
	router, db := setupRouter(t)

	id := createUser(t, router, " Giulia@Example.com ")

	var stored domain.User
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "giulia@example.com", stored.Email)
	assert.NoError(t, CheckPassword("correct horse", stored.PasswordHash))

	resp := performRequest(router, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "password")
	assert.NotContains(t, resp.Body.String(), stored.PasswordHash)

	resp = performRequest(router, http.MethodPut, fmt.Sprintf("/users/%d", id), UpdateRequest{
		Name: "Giulia R.", Email: "giulia@example.com", UserType: "guest",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated domain.User
	require.NoError(t, db.First(&updated, id).Error)
	assert.Equal(t, "Giulia R.", updated.Name)
	assert.Equal(t, domain.UserTypeGuest, updated.UserType)
	assert.Equal(t, stored.PasswordHash, updated.PasswordHash, "empty password keeps the hash")

	resp = performRequest(router, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []domain.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	router, _ := setupRouter(t)
	createUser(t, router, "dup@example.com")

	resp := performRequest(router, http.MethodPost, "/users", CreateRequest{
		Name: "Other", Email: "DUP@example.com", Password: "another secret", UserType: "guest",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.JSONEq(t, `{"status":409,"error":"email is already registered"}`, resp.Body.String())
}

func TestUserUpdate_EmailCollision(t *testing.T) {
	router, _ := setupRouter(t)
	createUser(t, router, "first@example.com")
	second := createUser(t, router, "second@example.com")

	resp := performRequest(router, http.MethodPut, fmt.Sprintf("/users/%d", second), UpdateRequest{
		Name: "Second", Email: "first@example.com", UserType: "guest",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestUserValidation(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name   string
		req    CreateRequest
		reason string
	}{
		{"short name", CreateRequest{Name: "G", Email: "g@example.com", Password: "12345678", UserType: "guest"}, "name must be at least 2 characters"},
		{"bad email", CreateRequest{Name: "Gi", Email: "g", Password: "12345678", UserType: "guest"}, "email must be a valid email address"},
		{"short password", CreateRequest{Name: "Gi", Email: "g@example.com", Password: "1234", UserType: "guest"}, "password must be at least 8 characters"},
		{"bad type", CreateRequest{Name: "Gi", Email: "g@example.com", Password: "12345678", UserType: "admin"}, "user_type must be one of: guest, owner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(router, http.MethodPost, "/users", tt.req)
			require.Equal(t, http.StatusBadRequest, resp.Code)
			var body struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.reason, body.Error)
		})
	}

	resp := performRequest(router, http.MethodGet, "/users/zero", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	resp = performRequest(router, http.MethodPut, "/users/99", UpdateRequest{Name: "Gi", Email: "g@example.com", UserType: "guest"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
