// Package dto defines data transfer objects for the entries feature's HTTP transport layer.
package dto

// EntryReq represents the request body for adding a grocery entry.
type EntryReq struct {
	ItemName      string `json:"item_name" binding:"required"`
	CategoryID    uint   `json:"category_id" binding:"required"`
	SupermarketID uint   `json:"supermarket_id"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	Description   string `json:"description"`
}

// EntryItem represents a stored entry in API responses.
type EntryItem struct {
	ID            uint   `json:"id"`
	ItemID        uint   `json:"item_id"`
	CategoryID    uint   `json:"category_id"`
	SupermarketID uint   `json:"supermarket_id"`
	Quantity      int    `json:"quantity"`
	Description   string `json:"description"`
	Purchased     bool   `json:"purchased"`
}

// ReportItem is one row of the not-purchased report.
type ReportItem struct {
	ItemName     string `json:"item_name"`
	CategoryName string `json:"category_name"`
	Quantity     int    `json:"quantity"`
	Description  string `json:"description"`
	Purchased    bool   `json:"purchased"`
}
