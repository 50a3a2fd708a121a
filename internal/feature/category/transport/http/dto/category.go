// Package dto defines data transfer objects for the category feature's HTTP transport layer.
package dto

// CategoryReq represents the request body for creating a category.
// The description is optional.
type CategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CategoryItem represents a category in API responses.
type CategoryItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
