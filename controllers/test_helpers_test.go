package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VersaceXcodes/todo-app/config"
	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/routes"
	"github.com/VersaceXcodes/todo-app/services"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

type testServer struct {
	Router   *gin.Engine
	DB       *store.Gateway
	Notifier *services.RecorderNotifier
	Tokens   *utils.TokenManager
}

// setupTestServer builds a full router over its own in-memory database, the
// same wiring main performs.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitTestLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	gateway := store.New(db)
	require.NoError(t, store.Bootstrap(context.Background(), gateway))

	notifier := &services.RecorderNotifier{}
	tokens := utils.NewTokenManager("test-secret", time.Hour)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{DB: gateway, Tokens: tokens, Notifier: notifier})

	return &testServer{Router: r, DB: gateway, Notifier: notifier, Tokens: tokens}
}

// do performs a JSON request. token may be empty.
func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// register creates an account and returns the token and user.
func (s *testServer) register(t *testing.T, email, password string) models.AuthResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.AuthResponse
	decode(t, w, &resp)
	return resp
}

// createTask inserts a task through the API and returns it.
func (s *testServer) createTask(t *testing.T, body gin.H) models.Task {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/tasks", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var task models.Task
	decode(t, w, &task)
	return task
}
