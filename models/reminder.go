package models

import "time"

// Reminder mirrors the reminders table.
type Reminder struct {
	ReminderID string    `json:"reminder_id"`
	TaskID     string    `json:"task_id"`
	RemindAt   time.Time `json:"remind_at"`
	Method     string    `json:"method"`
}

// CreateReminderRequest schedules a reminder for a task.
type CreateReminderRequest struct {
	TaskID   string   `json:"task_id" binding:"required"`
	RemindAt FlexTime `json:"remind_at" binding:"required"`
	Method   string   `json:"method" binding:"omitempty,oneof=email push"`
}

// ApplyDefaults fills the creation default: email delivery.
func (r *CreateReminderRequest) ApplyDefaults() {
	if r.Method == "" {
		r.Method = "email"
	}
}
