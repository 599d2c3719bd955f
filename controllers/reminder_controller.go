package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VersaceXcodes/todo-app/config"
	"github.com/VersaceXcodes/todo-app/models"
	"github.com/VersaceXcodes/todo-app/services"
	"github.com/VersaceXcodes/todo-app/store"
	"github.com/VersaceXcodes/todo-app/utils"
)

// ReminderController schedules reminders and hands them to the notifier.
type ReminderController struct {
	DB       *store.Gateway
	Notifier services.Notifier
}

func NewReminderController(db *store.Gateway, notifier services.Notifier) *ReminderController {
	return &ReminderController{DB: db, Notifier: notifier}
}

// CreateReminder validates and persists a reminder, then dispatches a
// notification carrying the task's title. The reminder must reference an
// existing task.
func (rc *ReminderController) CreateReminder(c *gin.Context) {
	var req models.CreateReminderRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ApplyDefaults()

	ctx := c.Request.Context()

	var task models.Task
	found, err := rc.DB.Get(ctx, &task,
		"SELECT task_id, user_id, title FROM tasks WHERE task_id = ?", req.TaskID)
	if err != nil {
		respondInternal(c, "Failed to create reminder", "REMINDER_CREATE_ERROR", err)
		return
	}
	if !found {
		respondNotFound(c, "Task not found", "TASK_NOT_FOUND")
		return
	}

	reminder := models.Reminder{
		ReminderID: utils.GenerateID(),
		TaskID:     req.TaskID,
		RemindAt:   req.RemindAt.UTC(),
		Method:     req.Method,
	}
	_, err = rc.DB.Exec(ctx,
		"INSERT INTO reminders (reminder_id, task_id, remind_at, method) VALUES (?, ?, ?, ?)",
		reminder.ReminderID, reminder.TaskID, reminder.RemindAt, reminder.Method)
	if err != nil {
		respondInternal(c, "Failed to create reminder", "REMINDER_CREATE_ERROR", err)
		return
	}

	var owner models.User
	if ownerFound, err := rc.DB.Get(ctx, &owner,
		"SELECT email FROM users WHERE user_id = ?", task.UserID); err == nil && ownerFound {
		if _, err := rc.Notifier.Send(ctx, services.Notification{
			Recipient: owner.Email,
			Method:    reminder.Method,
			Subject:   "Reminder: " + task.Title,
			Body:      "You asked to be reminded about this task.",
		}); err != nil {
			config.Logger.Errorw("reminder notification failed", "error", err, "reminderID", reminder.ReminderID)
		}
	}

	c.JSON(http.StatusCreated, reminder)
}

// RemindersForTask lists a task's reminders, soonest first.
func (rc *ReminderController) RemindersForTask(c *gin.Context) {
	reminders := []models.Reminder{}
	err := rc.DB.Select(c.Request.Context(), &reminders,
		"SELECT * FROM reminders WHERE task_id = ? ORDER BY remind_at ASC",
		c.Param("task_id"))
	if err != nil {
		respondInternal(c, "Failed to fetch reminders", "REMINDER_FETCH_ERROR", err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// DeleteReminder cancels a scheduled reminder.
func (rc *ReminderController) DeleteReminder(c *gin.Context) {
	affected, err := rc.DB.Exec(c.Request.Context(),
		"DELETE FROM reminders WHERE reminder_id = ?", c.Param("reminder_id"))
	if err != nil {
		respondInternal(c, "Failed to delete reminder", "REMINDER_DELETE_ERROR", err)
		return
	}
	if affected == 0 {
		respondNotFound(c, "Reminder not found", "REMINDER_NOT_FOUND")
		return
	}
	c.Status(http.StatusNoContent)
}
