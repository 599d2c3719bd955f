package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// UserController serves user profile reads, search and partial updates.
type UserController struct {
	DB *store.Gateway
}

func NewUserController(db *store.Gateway) *UserController {
	return &UserController{DB: db}
}

const userPublicColumns = "user_id, email, name, created_at, email_verified"

// SearchUsers lists users with substring filter, sorting and pagination.
func (uc *UserController) SearchUsers(c *gin.Context) {
	var req models.SearchUsersRequest
	if !bindQuery(c, &req) {
		return
	}
	req.ApplyDefaults()

	query := "SELECT " + userPublicColumns + " FROM users"
	args := []interface{}{}
	if req.Query != "" {
		query += " WHERE LOWER(email) LIKE ? OR LOWER(name) LIKE ?"
		pattern := likePattern(req.Query)
		args = append(args, pattern, pattern)
	}
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT ? OFFSET ?", req.SortBy, req.SortOrder)
	args = append(args, req.Limit, req.Offset)

	users := []models.User{}
	if err := uc.DB.Select(c.Request.Context(), &users, query, args...); err != nil {
		respondInternal(c, "Failed to search users", "USER_SEARCH_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one user's public fields.
func (uc *UserController) GetUser(c *gin.Context) {
	var user models.User
	found, err := uc.DB.Get(c.Request.Context(), &user,
		"SELECT "+userPublicColumns+" FROM users WHERE user_id = ?", c.Param("user_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch user", "USER_FETCH_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial profile patch. Only supplied fields are
// touched; a patch with no recognized fields is rejected.
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	userID := c.Param("user_id")

	var existing models.User
	found, err := uc.DB.Get(ctx, &existing,
		"SELECT user_id FROM users WHERE user_id = ?", userID)
	if err != nil {
		respondInternal(c, "Failed to update user", "USER_UPDATE_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	builder := store.NewUpdate("users")
	if req.Email != nil {
		builder.Set("email", models.NormalizeEmail(*req.Email))
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			respondInternal(c, "Failed to update user", "USER_UPDATE_ERROR", err)
			return
		}
		builder.Set("password_hash", hashed)
	}
	if req.Name.Set {
		builder.Set("name", req.Name.Ptr())
	}
	if req.EmailVerified != nil {
		builder.Set("email_verified", *req.EmailVerified)
	}

	query, args, err := builder.Build("user_id = ?", userID)
	if err != nil {
		respondConflict(c, "No fields to update", "NO_FIELDS_TO_UPDATE")
		return
	}
	if _, err := uc.DB.Exec(ctx, query, args...); err != nil {
		respondInternal(c, "Failed to update user", "USER_UPDATE_ERROR", err)
		return
	}

	var updated models.User
	if _, err := uc.DB.Get(ctx, &updated,
		"SELECT "+userPublicColumns+" FROM users WHERE user_id = ?", userID); err != nil {
		respondInternal(c, "Failed to update user", "USER_UPDATE_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
