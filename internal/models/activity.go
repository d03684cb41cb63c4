package models

import "time"

// Activity represents a single SMART goal. The buddy email is optional; when
// empty, every notification operation for the activity is rejected.
type Activity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Specific    string    `json:"specific"`
	Measurable  string    `json:"measurable"`
	Achievable  string    `json:"achievable"`
	Relevant    string    `json:"relevant"`
	Timebound   time.Time `json:"timebound"` // target completion date
	BuddyEmail  string    `json:"buddy_email"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
