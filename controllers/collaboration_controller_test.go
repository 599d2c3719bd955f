package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/todo-app/models"
)

func TestCollaborationLifecycle(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "owner@example.com", "password123")
	task := s.createTask(t, gin.H{"user_id": user.User.UserID, "title": "Shared"})

	invite := gin.H{"task_id": task.TaskID, "collaborator_email": "Helper@Example.com"}
	first := s.do(t, http.MethodPost, "/api/task-collaborations", invite, "")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	var created models.TaskCollaboration
	decode(t, first, &created)
	assert.Equal(t, "helper@example.com", created.CollaboratorEmail, "email normalized")

	dup := s.do(t, http.MethodPost, "/api/task-collaborations", invite, "")
	require.Equal(t, http.StatusBadRequest, dup.Code)
	var body models.ErrorResponse
	decode(t, dup, &body)
	assert.Equal(t, "DUPLICATE_ASSOCIATION", body.ErrorCode)

	count, err := s.DB.Count(context.Background(),
		"SELECT COUNT(*) FROM task_collaborations WHERE task_id = ?", task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	list := s.do(t, http.MethodGet, "/api/tasks/"+task.TaskID+"/collaborations", nil, "")
	require.Equal(t, http.StatusOK, list.Code)
	var collabs []models.TaskCollaboration
	decode(t, list, &collabs)
	require.Len(t, collabs, 1)

	del := s.do(t, http.MethodDelete, "/api/task-collaborations/"+task.TaskID+"/helper@example.com", nil, "")
	assert.Equal(t, http.StatusNoContent, del.Code)

	again := s.do(t, http.MethodDelete, "/api/task-collaborations/"+task.TaskID+"/helper@example.com", nil, "")
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestCollaborationRequiresValidEmail(t *testing.T) {
	s := setupTestServer(t)
	w := s.do(t, http.MethodPost, "/api/task-collaborations", gin.H{
		"task_id": "t1", "collaborator_email": "not-an-email",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s := setupTestServer(t)
	w := s.do(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}
