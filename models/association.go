package models

// TaskTag is a row of the task/tag association table. Pairs are unique.
type TaskTag struct {
	TaskID string `json:"task_id"`
	TagID  string `json:"tag_id"`
}

// CreateTaskTagRequest attaches a tag to a task.
type CreateTaskTagRequest struct {
	TaskID string `json:"task_id" binding:"required"`
	TagID  string `json:"tag_id" binding:"required"`
}

// TaskCollaboration invites an external participant to a task by email.
// Pairs are unique per task+email.
type TaskCollaboration struct {
	TaskID            string `json:"task_id"`
	CollaboratorEmail string `json:"collaborator_email"`
}

// CreateTaskCollaborationRequest is the invite payload.
type CreateTaskCollaborationRequest struct {
	TaskID            string `json:"task_id" binding:"required"`
	CollaboratorEmail string `json:"collaborator_email" binding:"required,email"`
}
