// Package dto defines data transfer objects for the supermarket feature's HTTP transport layer.
package dto

// SuperMarketReq represents the request body for creating a supermarket.
type SuperMarketReq struct {
	Name string `json:"name" binding:"required"`
}

// SuperMarketItem represents a supermarket in API responses.
type SuperMarketItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
