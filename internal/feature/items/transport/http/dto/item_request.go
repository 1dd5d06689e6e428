// Package dto defines data transfer objects for the items feature's HTTP transport layer.
package dto

// CreateItemReq represents the request body for POST /users/itemData.
// The owning user is taken from the session, not from the body.
type CreateItemReq struct {
	Name           string `json:"name" binding:"required"`
	StartDate      string `json:"startDate"`
	CompletionDate string `json:"completionDate" binding:"required"`
	Amount         string `json:"amount"`
}

// UpdateItemReq represents the request body for PATCH /users/itemData/:id.
// Pointer fields distinguish "absent" from "set to empty".
type UpdateItemReq struct {
	Name           *string `json:"name"`
	StartDate      *string `json:"startDate"`
	CompletionDate *string `json:"completionDate"`
	Amount         *string `json:"amount"`
}
