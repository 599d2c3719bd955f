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

// TagController implements tag CRUD and the task/tag association.
type TagController struct {
	DB *store.Gateway
}

func NewTagController(db *store.Gateway) *TagController {
	return &TagController{DB: db}
}

// SearchTags lists tags, name-sorted by default.
func (tc *TagController) SearchTags(c *gin.Context) {
	var req models.SearchTagsRequest
	if !bindQuery(c, &req) {
		return
	}
	req.ApplyDefaults()

	query := "SELECT * FROM tags"
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

	tags := []models.Tag{}
	if err := tc.DB.Select(c.Request.Context(), &tags, query, args...); err != nil {
		respondInternal(c, "Failed to search tags", "TAG_SEARCH_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag inserts a new tag.
func (tc *TagController) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if !bindJSON(c, &req) {
		return
	}

	tag := models.Tag{
		TagID:  utils.GenerateID(),
		UserID: req.UserID,
		Name:   req.Name,
	}
	_, err := tc.DB.Exec(c.Request.Context(),
		"INSERT INTO tags (tag_id, user_id, name) VALUES (?, ?, ?)",
		tag.TagID, tag.UserID, tag.Name)
	if err != nil {
		respondInternal(c, "Failed to create tag", "TAG_CREATE_ERROR", err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// UpdateTag applies a partial patch.
func (tc *TagController) UpdateTag(c *gin.Context) {
	var req models.UpdateTagRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	tagID := c.Param("tag_id")

	var existing models.Tag
	found, err := tc.DB.Get(ctx, &existing, "SELECT tag_id FROM tags WHERE tag_id = ?", tagID)
	if err != nil {
		respondInternal(c, "Failed to update tag", "TAG_UPDATE_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "Tag not found", "TAG_NOT_FOUND")
		return
	}

	builder := store.NewUpdate("tags")
	if req.UserID != nil {
		builder.Set("user_id", *req.UserID)
	}
	if req.Name != nil {
		builder.Set("name", *req.Name)
	}

	query, args, err := builder.Build("tag_id = ?", tagID)
	if err != nil {
		respondConflict(c, "No fields to update", "NO_FIELDS_TO_UPDATE")
		return
	}
	if _, err := tc.DB.Exec(ctx, query, args...); err != nil {
		respondInternal(c, "Failed to update tag", "TAG_UPDATE_ERROR", err)
		return
	}

	var updated models.Tag
	if _, err := tc.DB.Get(ctx, &updated, "SELECT * FROM tags WHERE tag_id = ?", tagID); err != nil {
		respondInternal(c, "Failed to update tag", "TAG_UPDATE_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTag removes the tag and its task associations in one transaction.
func (tc *TagController) DeleteTag(c *gin.Context) {
	ctx := c.Request.Context()
	tagID := c.Param("tag_id")

	err := tc.DB.InTx(ctx, func(tx *store.Gateway) error {
		var existing models.Tag
		found, err := tx.Get(ctx, &existing, "SELECT tag_id FROM tags WHERE tag_id = ?", tagID)
		if err != nil {
			return err
		}
		if !found {
			return errNotFound
		}
		if _, err := tx.Exec(ctx, "DELETE FROM task_tags WHERE tag_id = ?", tagID); err != nil {
			return err
		}
		_, err = tx.Exec(ctx, "DELETE FROM tags WHERE tag_id = ?", tagID)
		return err
	})
	if errors.Is(err, errNotFound) {
		respondNotFound(c, "Tag not found", "TAG_NOT_FOUND")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to delete tag", "TAG_DELETE_ERROR", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TagsForTask returns the tags attached to a task.
func (tc *TagController) TagsForTask(c *gin.Context) {
	tags := []models.Tag{}
	err := tc.DB.Select(c.Request.Context(), &tags,
		"SELECT g.* FROM tags g JOIN task_tags tt ON tt.tag_id = g.tag_id WHERE tt.task_id = ? ORDER BY g.name ASC",
		c.Param("task_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch task tags", "TASK_TAGS_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTaskTag attaches a tag to a task. Duplicates are rejected inside a
// transaction; the pair primary key backstops concurrent creates.
func (tc *TagController) CreateTaskTag(c *gin.Context) {
	var req models.CreateTaskTagRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	err := tc.DB.InTx(ctx, func(tx *store.Gateway) error {
		count, err := tx.Count(ctx,
			"SELECT COUNT(*) FROM task_tags WHERE task_id = ? AND tag_id = ?",
			req.TaskID, req.TagID)
		if err != nil {
			return err
		}
		if count > 0 {
			return errDuplicate
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)",
			req.TaskID, req.TagID)
		return err
	})
	if errors.Is(err, errDuplicate) {
		respondConflict(c, "Tag is already attached to this task", "DUPLICATE_ASSOCIATION")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to attach tag", "TASK_TAG_ERROR", err)
		return
	}
	c.JSON(http.StatusCreated, models.TaskTag{TaskID: req.TaskID, TagID: req.TagID})
}

// DeleteTaskTag detaches a tag from a task.
func (tc *TagController) DeleteTaskTag(c *gin.Context) {
	affected, err := tc.DB.Exec(c.Request.Context(),
		"DELETE FROM task_tags WHERE task_id = ? AND tag_id = ?",
		c.Param("task_id"), c.Param("tag_id"))
	if err != nil {
		respondInternal(c, "Failed to detach tag", "TASK_TAG_ERROR", err)
		return
	}
	if affected == 0 {
		respondNotFound(c, "Association not found", "ASSOCIATION_NOT_FOUND")
		return
	}
	c.Status(http.StatusNoContent)
}
