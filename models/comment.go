package models

import "time"

// TaskComment mirrors the task_comments table. Comments are append-only.
type TaskComment struct {
	CommentID string    `json:"comment_id"`
	TaskID    string    `json:"task_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskCommentRequest is the comment payload. Content must be non-empty.
type CreateTaskCommentRequest struct {
	TaskID  string `json:"task_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1"`
}
