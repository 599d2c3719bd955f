package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/store"
)

// CollaborationController manages task collaborators, invited by email.
type CollaborationController struct {
	DB *store.Gateway
}

func NewCollaborationController(db *store.Gateway) *CollaborationController {
	return &CollaborationController{DB: db}
}

// CreateCollaboration invites a collaborator to a task. A task+email pair
// can only exist once.
func (cc *CollaborationController) CreateCollaboration(c *gin.Context) {
	var req models.CreateTaskCollaborationRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	email := models.NormalizeEmail(req.CollaboratorEmail)

	err := cc.DB.InTx(ctx, func(tx *store.Gateway) error {
		count, err := tx.Count(ctx,
			"SELECT COUNT(*) FROM task_collaborations WHERE task_id = ? AND collaborator_email = ?",
			req.TaskID, email)
		if err != nil {
			return err
		}
		if count > 0 {
			return errDuplicate
		}
		_, err = tx.Exec(ctx,
			"INSERT INTO task_collaborations (task_id, collaborator_email) VALUES (?, ?)",
			req.TaskID, email)
		return err
	})
	if errors.Is(err, errDuplicate) {
		respondConflict(c, "Collaborator is already invited to this task", "DUPLICATE_ASSOCIATION")
		return
	}
	if err != nil {
		respondInternal(c, "Failed to invite collaborator", "COLLABORATION_ERROR", err)
		return
	}
	c.JSON(http.StatusCreated, models.TaskCollaboration{TaskID: req.TaskID, CollaboratorEmail: email})
}

// DeleteCollaboration removes an invite.
func (cc *CollaborationController) DeleteCollaboration(c *gin.Context) {
	affected, err := cc.DB.Exec(c.Request.Context(),
		"DELETE FROM task_collaborations WHERE task_id = ? AND collaborator_email = ?",
		c.Param("task_id"), models.NormalizeEmail(c.Param("collaborator_email")))
	if err != nil {
		respondInternal(c, "Failed to remove collaborator", "COLLABORATION_ERROR", err)
		return
	}
	if affected == 0 {
		respondNotFound(c, "Collaboration not found", "COLLABORATION_NOT_FOUND")
		return
	}
	c.Status(http.StatusNoContent)
}

// CollaborationsForTask lists a task's collaborators.
func (cc *CollaborationController) CollaborationsForTask(c *gin.Context) {
	collaborations := []models.TaskCollaboration{}
	err := cc.DB.Select(c.Request.Context(), &collaborations,
		"SELECT * FROM task_collaborations WHERE task_id = ? ORDER BY collaborator_email ASC",
		c.Param("task_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch collaborators", "COLLABORATION_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, collaborations)
}
