package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VersaceXcodes/todo-app/models"
)

func TestCreateComment(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "comment@example.com", "password123")
	task := s.createTask(t, gin.H{"user_id": user.User.UserID, "title": "Discussed"})

	w := s.do(t, http.MethodPost, "/api/task-comments", gin.H{
		"task_id": task.TaskID,
		"user_id": user.User.UserID,
		"content": "first!",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var comment models.TaskComment
	decode(t, w, &comment)
	assert.Equal(t, "first!", comment.Content)
	assert.NotEmpty(t, comment.CommentID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestCreateCommentRejectsEmptyContent(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "nocontent@example.com", "password123")
	task := s.createTask(t, gin.H{"user_id": user.User.UserID, "title": "Silent"})

	w := s.do(t, http.MethodPost, "/api/task-comments", gin.H{
		"task_id": task.TaskID,
		"user_id": user.User.UserID,
		"content": "",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentsForTaskOldestFirst(t *testing.T) {
	s := setupTestServer(t)
	user := s.register(t, "thread@example.com", "password123")
	task := s.createTask(t, gin.H{"user_id": user.User.UserID, "title": "Thread"})

	for _, content := range []string{"one", "two"} {
		w := s.do(t, http.MethodPost, "/api/task-comments", gin.H{
			"task_id": task.TaskID, "user_id": user.User.UserID, "content": content,
		}, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := s.do(t, http.MethodGet, "/api/tasks/"+task.TaskID+"/comments", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var comments []models.TaskComment
	decode(t, w, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "one", comments[0].Content)
}
