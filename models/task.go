package models

import "time"

// Task mirrors the tasks table.
type Task struct {
	TaskID      string     `json:"task_id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateTaskRequest is the task creation payload.
type CreateTaskRequest struct {
	UserID      string    `json:"user_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description"`
	IsCompleted *bool     `json:"is_completed"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=high medium low"`
	DueDate     *FlexTime `json:"due_date"`
}

// ApplyDefaults fills creation defaults: not completed, medium priority.
func (r *CreateTaskRequest) ApplyDefaults() {
	if r.IsCompleted == nil {
		completed := false
		r.IsCompleted = &completed
	}
	if r.Priority == "" {
		r.Priority = "medium"
	}
}

// UpdateTaskRequest is a partial task patch.
type UpdateTaskRequest struct {
	UserID      *string   `json:"user_id"`
	Title       *string   `json:"title"`
	Description OptString `json:"description"`
	IsCompleted *bool     `json:"is_completed"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=high medium low"`
	DueDate     OptTime   `json:"due_date"`
}

// SearchTasksRequest is the task listing/search query.
type SearchTasksRequest struct {
	Query     string `form:"query"`
	UserID    string `form:"user_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=title created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ApplyDefaults fills the search defaults: recency-sorted, newest first.
func (r *SearchTasksRequest) ApplyDefaults() {
	if r.Limit == 0 {
		r.Limit = 10
	}
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	if r.SortOrder == "" {
		r.SortOrder = "desc"
	}
}
