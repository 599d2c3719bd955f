package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// TaskListController implements task-list CRUD and list membership.
type TaskListController struct {
	DB *store.Gateway
}

func NewTaskListController(db *store.Gateway) *TaskListController {
	return &TaskListController{DB: db}
}

// SearchTaskLists lists task lists, name-sorted by default.
func (lc *TaskListController) SearchTaskLists(c *gin.Context) {
	var req models.SearchTaskListsRequest
	if !bindQuery(c, &req) {
		return
	}
	req.ApplyDefaults()

	query := "SELECT * FROM task_lists"
	conditions := []string{}
	args := []interface{}{}
	if req.Query != "" {
		conditions = append(conditions, "LOWER(name) LIKE ?")
		args = append(args, likePattern(req.Query))
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

	lists := []models.TaskList{}
	if err := lc.DB.Select(c.Request.Context(), &lists, query, args...); err != nil {
		respondInternal(c, "Failed to search task lists", "TASK_LIST_SEARCH_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// CreateTaskList inserts a new list.
func (lc *TaskListController) CreateTaskList(c *gin.Context) {
	var req models.CreateTaskListRequest
	if !bindJSON(c, &req) {
		return
	}

	list := models.TaskList{
		ListID: utils.GenerateID(),
		UserID: req.UserID,
		Name:   req.Name,
	}
	_, err := lc.DB.Exec(c.Request.Context(),
		"INSERT INTO task_lists (list_id, user_id, name) VALUES (?, ?, ?)",
		list.ListID, list.UserID, list.Name)
	if err != nil {
		respondInternal(c, "Failed to create task list", "TASK_LIST_CREATE_ERROR", err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// GetTaskList returns one list.
func (lc *TaskListController) GetTaskList(c *gin.Context) {
	var list models.TaskList
	found, err := lc.DB.Get(c.Request.Context(), &list,
		"SELECT * FROM task_lists WHERE list_id = ?", c.Param("list_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch task list", "TASK_LIST_FETCH_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "Task list not found", "TASK_LIST_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateTaskList applies a partial patch.
func (lc *TaskListController) UpdateTaskList(c *gin.Context) {
	var req models.UpdateTaskListRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	listID := c.Param("list_id")

	var existing models.TaskList
	found, err := lc.DB.Get(ctx, &existing, "SELECT list_id FROM task_lists WHERE list_id = ?", listID)
	if err != nil {
		respondInternal(c, "Failed to update task list", "TASK_LIST_UPDATE_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "Task list not found", "TASK_LIST_NOT_FOUND")
		return
	}

	builder := store.NewUpdate("task_lists")
	if req.UserID != nil {
		builder.Set("user_id", *req.UserID)
	}
	if req.Name != nil {
		builder.Set("name", *req.Name)
	}

	query, args, err := builder.Build("list_id = ?", listID)
	if err != nil {
		respondConflict(c, "No fields to update", "NO_FIELDS_TO_UPDATE")
		return
	}
	if _, err := lc.DB.Exec(ctx, query, args...); err != nil {
		respondInternal(c, "Failed to update task list", "TASK_LIST_UPDATE_ERROR", err)
		return
	}

	var updated models.TaskList
	if _, err := lc.DB.Get(ctx, &updated, "SELECT * FROM task_lists WHERE list_id = ?", listID); err != nil {
		respondInternal(c, "Failed to update task list", "TASK_LIST_UPDATE_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTaskList removes the list and its membership rows. The tasks
// themselves survive.
func (lc *TaskListController) DeleteTaskList(c *gin.Context) {
	ctx := c.Request.Context()
	listID := c.Param("list_id")

	err := lc.DB.InTx(ctx, func(tx *store.Gateway) error {
		var existing models.TaskList
		found, err := tx.Get(ctx, &existing, "SELECT list_id FROM task_lists WHERE list_id = ?", listID)
		if err != nil {
			return err
		}
		if !found {
			return errNotFound
		}
		if _, err := tx.Exec(ctx, "DELETE FROM task_list_relations WHERE list_id = ?", listID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, "DELETE FROM task_lists WHERE list_id = ?", listID)
		return err
	})
	if errors.Is(err, errNotFound) {
		respondNotFound(c, "Task list not found", "TASK_LIST_NOT_FOUND")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to delete task list", "TASK_LIST_DELETE_ERROR", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TasksInList returns the tasks belonging to a list.
func (lc *TaskListController) TasksInList(c *gin.Context) {
	tasks := []models.Task{}
	err := lc.DB.Select(c.Request.Context(), &tasks,
		"SELECT t.* FROM tasks t JOIN task_list_relations r ON r.task_id = t.task_id WHERE r.list_id = ? ORDER BY t.created_at DESC",
		c.Param("list_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch list tasks", "TASK_LIST_TASKS_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTaskListRelation adds a task to a list. Duplicate pairs are
// rejected; the check and insert share a transaction and the table carries a
// primary key on the pair, so a concurrent duplicate loses at the insert.
func (lc *TaskListController) CreateTaskListRelation(c *gin.Context) {
	var req models.CreateTaskListRelationRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	err := lc.DB.InTx(ctx, func(tx *store.Gateway) error {
		count, err := tx.Count(ctx,
			"SELECT COUNT(*) FROM task_list_relations WHERE list_id = ? AND task_id = ?",
			req.ListID, req.TaskID)
		if err != nil {
			return err
		}
		if count > 0 {
			return errDuplicate
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO task_list_relations (list_id, task_id) VALUES (?, ?)",
			req.ListID, req.TaskID)
		return err
	})
	if errors.Is(err, errDuplicate) {
		respondConflict(c, "Task is already in this list", "DUPLICATE_ASSOCIATION")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to add task to list", "TASK_LIST_RELATION_ERROR", err)
		return
	}
	c.JSON(http.StatusCreated, models.TaskListRelation{ListID: req.ListID, TaskID: req.TaskID})
}

// DeleteTaskListRelation removes a task from a list.
func (lc *TaskListController) DeleteTaskListRelation(c *gin.Context) {
	affected, err := lc.DB.Exec(c.Request.Context(),
		"DELETE FROM task_list_relations WHERE list_id = ? AND task_id = ?",
		c.Param("list_id"), c.Param("task_id"))
	if err != nil {
		respondInternal(c, "Failed to remove task from list", "TASK_LIST_RELATION_ERROR", err)
		return
	}
	if affected == 0 {
		respondNotFound(c, "Relation not found", "RELATION_NOT_FOUND")
		return
	}
	c.Status(http.StatusNoContent)
}
