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

func TestCreateTaskAppliesDefaults(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "tasks@example.com", "password123")

	task := s.createTask(t, gin.H{"user_id": user.User.UserID, "title": "Buy milk"})
	assert.Equal(t, "medium", task.Priority)
	assert.False(t, task.IsCompleted)
	assert.Nil(t, task.DueDate)
	assert.NotEmpty(t, task.TaskID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateTaskValidation(t *testing.T) {
	s := setupTestServer(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"user_id": "u1"}},
		{"missing user", gin.H{"title": "x"}},
		{"bad priority", gin.H{"user_id": "u1", "title": "x", "priority": "urgent"}},
		{"bad due date", gin.H{"user_id": "u1", "title": "x", "due_date": "not a date"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/tasks", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateTaskCoercesDueDate(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "due@example.com", "password123")

	task := s.createTask(t, gin.H{
		"user_id":  user.User.UserID,
		"title":    "Dated",
		"due_date": "2030-01-02",
	})
	require.NotNil(t, task.DueDate)
	assert.Equal(t, 2030, task.DueDate.UTC().Year())
}

func TestGetTaskNotFound(t *testing.T) {
	s := setupTestServer(t)
	w := s.do(t, http.MethodGet, "/api/tasks/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body models.ErrorResponse
	decode(t, w, &body)
	assert.Equal(t, "TASK_NOT_FOUND", body.ErrorCode)
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "patch@example.com", "password123")
	task := s.createTask(t, gin.H{
		"user_id":     user.User.UserID,
		"title":       "Original",
		"description": "keep or clear",
		"priority":    "low",
	})

	w := s.do(t, http.MethodPut, "/api/tasks/"+task.TaskID, gin.H{"title": "Renamed"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Task
	decode(t, w, &updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "low", updated.Priority, "untouched field survives")
	require.NotNil(t, updated.Description)
	assert.Equal(t, "keep or clear", *updated.Description)

	// Explicit null clears the nullable column.
	w = s.do(t, http.MethodPut, "/api/tasks/"+task.TaskID, gin.H{"description": nil}, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &updated)
	assert.Nil(t, updated.Description)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestUpdateTaskEmptyPatchRejected(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "empty@example.com", "password123")
	task := s.createTask(t, gin.H{"user_id": user.User.UserID, "title": "Untouched"})

	w := s.do(t, http.MethodPut, "/api/tasks/"+task.TaskID, gin.H{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body models.ErrorResponse
	decode(t, w, &body)
	assert.Equal(t, "NO_FIELDS_TO_UPDATE", body.ErrorCode)

	// Row unchanged.
	fetch := s.do(t, http.MethodGet, "/api/tasks/"+task.TaskID, nil, "")
	var current models.Task
	decode(t, fetch, &current)
	assert.Equal(t, "Untouched", current.Title)
}

func TestUpdateTaskNotFound(t *testing.T) {
	s := setupTestServer(t)
	w := s.do(t, http.MethodPut, "/api/tasks/missing", gin.H{"title": "x"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTaskCascades(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "cascade@example.com", "password123")
	userID := user.User.UserID
	task := s.createTask(t, gin.H{"user_id": userID, "title": "Doomed"})

	// Tag attached to the task.
	w := s.do(t, http.MethodPost, "/api/tags", gin.H{"user_id": userID, "name": "doom"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var tag models.Tag
	decode(t, w, &tag)
	w = s.do(t, http.MethodPost, "/api/task-tags", gin.H{"task_id": task.TaskID, "tag_id": tag.TagID}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// List membership.
	w = s.do(t, http.MethodPost, "/api/task-lists", gin.H{"user_id": userID, "name": "Doom list"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var list models.TaskList
	decode(t, w, &list)
	w = s.do(t, http.MethodPost, "/api/task-list-relations", gin.H{"list_id": list.ListID, "task_id": task.TaskID}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Collaboration, comment, reminder.
	w = s.do(t, http.MethodPost, "/api/task-collaborations", gin.H{"task_id": task.TaskID, "collaborator_email": "helper@example.com"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(t, http.MethodPost, "/api/task-comments", gin.H{"task_id": task.TaskID, "user_id": userID, "content": "bye"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(t, http.MethodPost, "/api/reminders", gin.H{"task_id": task.TaskID, "remind_at": "2030-01-01T09:00:00Z"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Delete and verify every dependent table is empty for this task.
	w = s.do(t, http.MethodDelete, "/api/tasks/"+task.TaskID, nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	ctx := context.Background()
	for _, table := range []string{"task_tags", "task_list_relations", "task_collaborations", "task_comments", "reminders", "tasks"} {
		count, err := s.DB.Count(ctx, "SELECT COUNT(*) FROM "+table+" WHERE task_id = ?", task.TaskID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count, "table %s", table)
	}

	fetch := s.do(t, http.MethodGet, "/api/tasks/"+task.TaskID, nil, "")
	assert.Equal(t, http.StatusNotFound, fetch.Code)
}

func TestDeleteTaskNotFound(t *testing.T) {
	s := setupTestServer(t)
	w := s.do(t, http.MethodDelete, "/api/tasks/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchTasksPaginationAndSort(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "page@example.com", "password123")
	userID := user.User.UserID

	for _, title := range []string{"alpha", "bravo", "charlie"} {
		s.createTask(t, gin.H{"user_id": userID, "title": title})
	}

	w := s.do(t, http.MethodGet,
		"/api/tasks?user_id="+userID+"&sort_by=title&sort_order=asc&limit=1&offset=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tasks []models.Task
	decode(t, w, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "bravo", tasks[0].Title)
}

func TestSearchTasksSubstringCaseInsensitive(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "find@example.com", "password123")
	userID := user.User.UserID

	s.createTask(t, gin.H{"user_id": userID, "title": "Buy MILK at the store"})
	s.createTask(t, gin.H{"user_id": userID, "title": "Walk the dog", "description": "bring Milk biscuits"})
	s.createTask(t, gin.H{"user_id": userID, "title": "Unrelated"})

	w := s.do(t, http.MethodGet, "/api/tasks?user_id="+userID+"&query=milk", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	decode(t, w, &tasks)
	assert.Len(t, tasks, 2, "matches in title and description")
}

func TestSearchTasksRejectsBadPagination(t *testing.T) {
	s := setupTestServer(t)
	w := s.do(t, http.MethodGet, "/api/tasks?limit=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/tasks?sort_by=password_hash", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The full journey: register, login, create, fetch, delete.
func TestTaskLifecycleEndToEnd(t *testing.T) {
	s := setupTestServer(t)
	s.register(t, "journey@example.com", "password123")

	login := s.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "journey@example.com", "password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, login.Code)
	var auth models.AuthResponse
	decode(t, login, &auth)

	task := s.createTask(t, gin.H{"user_id": auth.User.UserID, "title": "Buy milk"})

	fetch := s.do(t, http.MethodGet, "/api/tasks/"+task.TaskID, nil, auth.AuthToken)
	require.Equal(t, http.StatusOK, fetch.Code)
	var fetched models.Task
	decode(t, fetch, &fetched)
	assert.Equal(t, "Buy milk", fetched.Title)
	assert.False(t, fetched.IsCompleted)
	assert.Equal(t, "medium", fetched.Priority)

	del := s.do(t, http.MethodDelete, "/api/tasks/"+task.TaskID, nil, auth.AuthToken)
	require.Equal(t, http.StatusNoContent, del.Code)

	gone := s.do(t, http.MethodGet, "/api/tasks/"+task.TaskID, nil, auth.AuthToken)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
