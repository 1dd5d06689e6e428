// Package entity defines the domain entities for the items feature.
package entity

import "time"

// Item represents one to-do record with a deadline and an amount.
// UserID is a reference to the owning user; every query against items
// is scoped by it so users never see each other's records.
type Item struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	// Name is the free-text label of the item.
	Name string `gorm:"size:255;not null" json:"name"`

	// UserID is the id of the owning user.
	UserID uint `gorm:"index;not null" json:"user"`

	// StartDate and CompletionDate are client-formatted date strings.
	StartDate      string `gorm:"size:64" json:"startDate"`
	CompletionDate string `gorm:"size:64" json:"completionDate"`

	// Amount is stored as text, matching what the client submits.
	Amount string `gorm:"size:64" json:"amount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
