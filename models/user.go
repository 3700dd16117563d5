package models

import "time"

// User represents an account in the application database.
// The Password field always holds a bcrypt hash once the record is stored;
// it is exposed as-is on reads, matching the API contract.
type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password  string    `json:"password" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
