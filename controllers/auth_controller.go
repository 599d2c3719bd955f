package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/config"
	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/services"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// AuthController handles registration, login, logout and password recovery.
type AuthController struct {
	DB       *store.Gateway
	Tokens   *utils.TokenManager
	Notifier services.Notifier
}

func NewAuthController(db *store.Gateway, tokens *utils.TokenManager, notifier services.Notifier) *AuthController {
	return &AuthController{DB: db, Tokens: tokens, Notifier: notifier}
}

// Register creates a user account and issues a token.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	email := models.NormalizeEmail(req.Email)

	count, err := ac.DB.Count(ctx, "SELECT COUNT(*) FROM users WHERE email = ?", email)
	if err != nil {
		respondInternal(c, "Registration failed", "REGISTRATION_ERROR", err)
		return
	}
	if count > 0 {
		respondConflict(c, "User with this email already exists", "USER_ALREADY_EXISTS")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondInternal(c, "Registration failed", "REGISTRATION_ERROR", err)
		return
	}

	user := models.User{
		UserID:    utils.GenerateID(),
		Email:     email,
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	_, err = ac.DB.Exec(ctx,
		"INSERT INTO users (user_id, email, password_hash, name, created_at, email_verified) VALUES (?, ?, ?, ?, ?, ?)",
		user.UserID, user.Email, hashed, user.Name, user.CreatedAt, false)
	if err != nil {
		respondInternal(c, "Registration failed", "REGISTRATION_ERROR", err)
		return
	}

	token, err := ac.Tokens.GenerateToken(user.UserID, user.Email)
	if err != nil {
		respondInternal(c, "Registration failed", "REGISTRATION_ERROR", err)
		return
	}

	config.Logger.Infow("user registered", "userID", user.UserID)
	c.JSON(http.StatusCreated, models.AuthResponse{AuthToken: token, User: user})
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the identical generic rejection so the endpoint cannot be
// used to enumerate accounts.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse("Email and password are required", "MISSING_CREDENTIALS", nil))
		return
	}

	ctx := c.Request.Context()

	var user models.User
	found, err := ac.DB.Get(ctx, &user,
		"SELECT user_id, email, password_hash, name, created_at, email_verified FROM users WHERE email = ?",
		models.NormalizeEmail(req.Email))
	if err != nil {
		respondInternal(c, "Login failed", "LOGIN_ERROR", err)
		return
	}
	if !found || utils.ComparePassword(user.PasswordHash, req.Password) != nil {
		c.JSON(http.StatusBadRequest,
			models.NewErrorResponse("Invalid email or password", "INVALID_CREDENTIALS", nil))
		return
	}

	token, err := ac.Tokens.GenerateToken(user.UserID, user.Email)
	if err != nil {
		respondInternal(c, "Login failed", "LOGIN_ERROR", err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{AuthToken: token, User: user})
}

// PasswordRecovery always answers with the same generic message. The
// notification only goes out when the account actually exists.
func (ac *AuthController) PasswordRecovery(c *gin.Context) {
	var req models.PasswordRecoveryRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	email := models.NormalizeEmail(req.Email)

	var user models.User
	found, err := ac.DB.Get(ctx, &user,
		"SELECT user_id, email, name FROM users WHERE email = ?", email)
	if err != nil {
		respondInternal(c, "Password recovery failed", "RECOVERY_ERROR", err)
		return
	}

	if found {
		if _, err := ac.Notifier.Send(ctx, services.Notification{
			Recipient: user.Email,
			Method:    "email",
			Subject:   "Password recovery",
			Body:      "Follow the link in this message to reset your password.",
		}); err != nil {
			config.Logger.Errorw("recovery notification failed", "error", err, "userID", user.UserID)
		}
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "If an account with that email exists, a recovery link has been sent",
	})
}

// Logout is stateless: the server keeps no session, the client discards the
// token. The endpoint exists so clients get a positive acknowledgement.
func (ac *AuthController) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
