package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/config"
	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// TaskController implements task CRUD and search.
type TaskController struct {
	DB *store.Gateway
}

func NewTaskController(db *store.Gateway) *TaskController {
	return &TaskController{DB: db}
}

// SearchTasks lists tasks with substring filter over title and description,
// optional owner filter, sorting and pagination.
func (tc *TaskController) SearchTasks(c *gin.Context) {
	var req models.SearchTasksRequest
	if !bindQuery(c, &req) {
		return
	}
	req.ApplyDefaults()

	query := "SELECT * FROM tasks"
	conditions := []string{}
	args := []interface{}{}
	if req.Query != "" {
		conditions = append(conditions, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		pattern := likePattern(req.Query)
		args = append(args, pattern, pattern)
	}
	if req.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, req.UserID)
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT ? OFFSET ?", req.SortBy, req.SortOrder)
	args = append(args, req.Limit, req.Offset)

	tasks := []models.Task{}
	if err := tc.DB.Select(c.Request.Context(), &tasks, query, args...); err != nil {
		respondInternal(c, "Failed to search tasks", "TASK_SEARCH_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask validates, applies defaults, and inserts a new task.
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ApplyDefaults()

	task := models.Task{
		TaskID:      utils.GenerateID(),
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: *req.IsCompleted,
		Priority:    req.Priority,
		CreatedAt:   time.Now().UTC(),
	}
	if req.DueDate != nil {
		due := req.DueDate.Time
		task.DueDate = &due
	}

	_, err := tc.DB.Exec(c.Request.Context(),
		"INSERT INTO tasks (task_id, user_id, title, description, is_completed, priority, due_date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		task.TaskID, task.UserID, task.Title, task.Description, task.IsCompleted, task.Priority, task.DueDate, task.CreatedAt)
	if err != nil {
		respondInternal(c, "Failed to create task", "TASK_CREATE_ERROR", err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask returns one task.
func (tc *TaskController) GetTask(c *gin.Context) {
	var task models.Task
	found, err := tc.DB.Get(c.Request.Context(), &task,
		"SELECT * FROM tasks WHERE task_id = ?", c.Param("task_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch task", "TASK_FETCH_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "Task not found", "TASK_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial patch touching only supplied fields. An
// explicit null clears description or due_date; an absent field leaves the
// column alone.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	var req models.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	taskID := c.Param("task_id")

	var existing models.Task
	found, err := tc.DB.Get(ctx, &existing, "SELECT task_id FROM tasks WHERE task_id = ?", taskID)
	if err != nil {
		respondInternal(c, "Failed to update task", "TASK_UPDATE_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "Task not found", "TASK_NOT_FOUND")
		return
	}

	builder := store.NewUpdate("tasks")
	if req.UserID != nil {
		builder.Set("user_id", *req.UserID)
	}
	if req.Title != nil {
		builder.Set("title", *req.Title)
	}
	if req.Description.Set {
		builder.Set("description", req.Description.Ptr())
	}
	if req.IsCompleted != nil {
		builder.Set("is_completed", *req.IsCompleted)
	}
	if req.Priority != nil {
		builder.Set("priority", *req.Priority)
	}
	if req.DueDate.Set {
		builder.Set("due_date", req.DueDate.Ptr())
	}

	query, args, err := builder.Build("task_id = ?", taskID)
	if err != nil {
		respondConflict(c, "No fields to update", "NO_FIELDS_TO_UPDATE")
		return
	}
	if _, err := tc.DB.Exec(ctx, query, args...); err != nil {
		respondInternal(c, "Failed to update task", "TASK_UPDATE_ERROR", err)
		return
	}

	var updated models.Task
	if _, err := tc.DB.Get(ctx, &updated, "SELECT * FROM tasks WHERE task_id = ?", taskID); err != nil {
		respondInternal(c, "Failed to update task", "TASK_UPDATE_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTask removes the task and every dependent row. The whole cascade
// runs in one transaction, children before parent, so a mid-cascade failure
// cannot leave orphans.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()
	taskID := c.Param("task_id")

	err := tc.DB.InTx(ctx, func(tx *store.Gateway) error {
		var existing models.Task
		found, err := tx.Get(ctx, &existing, "SELECT task_id FROM tasks WHERE task_id = ?", taskID)
		if err != nil {
			return err
		}
		if !found {
			return errNotFound
		}

		for _, stmt := range []string{
			"DELETE FROM task_tags WHERE task_id = ?",
			"DELETE FROM task_list_relations WHERE task_id = ?",
			"DELETE FROM task_collaborations WHERE task_id = ?",
			"DELETE FROM task_comments WHERE task_id = ?",
			"DELETE FROM reminders WHERE task_id = ?",
			"DELETE FROM tasks WHERE task_id = ?",
		} {
			if _, err := tx.Exec(ctx, stmt, taskID); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errNotFound) {
		respondNotFound(c, "Task not found", "TASK_NOT_FOUND")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to delete task", "TASK_DELETE_ERROR", err)
		return
	}

	config.Logger.Infow("task deleted", "taskID", taskID)
	c.Status(http.StatusNoContent)
}
