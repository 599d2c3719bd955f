package models

// TaskList mirrors the task_lists table.
type TaskList struct {
	ListID string `json:"list_id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// TaskListRelation is a row of the list/task membership table.
type TaskListRelation struct {
	ListID string `json:"list_id"`
	TaskID string `json:"task_id"`
}

// CreateTaskListRequest is the list creation payload.
type CreateTaskListRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// UpdateTaskListRequest is a partial list patch.
type UpdateTaskListRequest struct {
	UserID *string `json:"user_id"`
	Name   *string `json:"name"`
}

// CreateTaskListRelationRequest adds a task to a list.
type CreateTaskListRelationRequest struct {
	ListID string `json:"list_id" binding:"required"`
	TaskID string `json:"task_id" binding:"required"`
}

// SearchTaskListsRequest is the list search query.
type SearchTaskListsRequest struct {
	Query     string `form:"query"`
	UserID    string `form:"user_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=name"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ApplyDefaults fills the search defaults: name-sorted, ascending.
func (r *SearchTaskListsRequest) ApplyDefaults() {
	if r.Limit == 0 {
		r.Limit = 10
	}
	if r.SortBy == "" {
		r.SortBy = "name"
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
}
