// Package controllers implements the resource handlers. Every handler
// follows the same shape: bind and validate the payload, run one or more
// statements through the store gateway, and shape the JSON reply. All
// failures are converted locally into the structured error body; nothing
// escapes unshaped.
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/config"
	"github.com/VersaceXcodes/todo-app/models"
)

var (
	errNotFound  = errors.New("resource not found")
	errDuplicate = errors.New("association already exists")
)

// bindJSON binds the request body and replies 400 with per-field details on
// failure. The bool reports whether the handler should continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse("Invalid request payload", "VALIDATION_ERROR", models.ValidationDetails(err)))
		return false
	}
	return true
}

// bindQuery binds query-string search parameters, same contract as bindJSON.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse("Invalid query parameters", "VALIDATION_ERROR", models.ValidationDetails(err)))
		return false
	}
	return true
}

func respondNotFound(c *gin.Context, message, code string) {
	c.JSON(http.StatusNotFound, models.NewErrorResponse(message, code, nil))
}

func respondConflict(c *gin.Context, message, code string) {
	c.JSON(http.StatusBadRequest, models.NewErrorResponse(message, code, nil))
}

// likePattern builds a case-insensitive substring match argument; queries
// compare against LOWER(column).
func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

// respondInternal logs the underlying failure and replies 500. The raw error
// is kept out of the response body.
func respondInternal(c *gin.Context, message, code string, err error) {
	config.Logger.Errorw(message,
		"error", err,
		"path", c.Request.URL.Path,
		"requestID", c.GetString("requestID"),
	)
	c.JSON(http.StatusInternalServerError, models.NewErrorResponse(message, code, nil))
}
