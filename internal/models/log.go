package models

import "time"

// Log is one timestamped progress entry tied to an activity. Logs are
// append-only: they are never updated after creation.
type Log struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActivityID uint      `gorm:"index;not null" json:"activity_id"`
	Text       string    `gorm:"not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
