// Package dto defines data transfer objects for the bucket feature's HTTP transport layer.
package dto

// BucketReq represents the request body for creating a bucket.
type BucketReq struct {
	Name string `json:"name" binding:"required"`
}

// BucketItem represents a bucket in API responses.
type BucketItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
