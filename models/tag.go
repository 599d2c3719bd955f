package models

// Tag mirrors the tags table.
type Tag struct {
	TagID  string `json:"tag_id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// CreateTagRequest is the tag creation payload.
type CreateTagRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// UpdateTagRequest is a partial tag patch.
type UpdateTagRequest struct {
	UserID *string `json:"user_id"`
	Name   *string `json:"name"`
}

// SearchTagsRequest is the tag search query.
type SearchTagsRequest struct {
	Query     string `form:"query"`
	UserID    string `form:"user_id"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=name"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ApplyDefaults fills the search defaults: name-sorted, ascending.
func (r *SearchTagsRequest) ApplyDefaults() {
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
