package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// CommentController appends and lists task comments.
type CommentController struct {
	DB *store.Gateway
}

func NewCommentController(db *store.Gateway) *CommentController {
	return &CommentController{DB: db}
}

// CreateComment appends a comment. Content must be non-empty; comments are
// never edited or deleted individually.
func (cc *CommentController) CreateComment(c *gin.Context) {
	var req models.CreateTaskCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment := models.TaskComment{
		CommentID: utils.GenerateID(),
		TaskID:    req.TaskID,
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	_, err := cc.DB.Exec(c.Request.Context(),
		"INSERT INTO task_comments (comment_id, task_id, user_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		comment.CommentID, comment.TaskID, comment.UserID, comment.Content, comment.CreatedAt)
	if err != nil {
		respondInternal(c, "Failed to create comment", "COMMENT_CREATE_ERROR", err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// CommentsForTask lists a task's comments oldest first.
func (cc *CommentController) CommentsForTask(c *gin.Context) {
	comments := []models.TaskComment{}
	err := cc.DB.Select(c.Request.Context(), &comments,
		"SELECT * FROM task_comments WHERE task_id = ? ORDER BY created_at ASC",
		c.Param("task_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch comments", "COMMENT_FETCH_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
