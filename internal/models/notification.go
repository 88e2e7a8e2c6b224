package models

import "time"

// Notification categories. Created only as a side effect of engagement
// actions, never standalone.
const (
	NotificationCategoryKudos   = "kudos"
	NotificationCategoryComment = "comment"
)

// Notification represents a persisted user notification (PostgreSQL).
// Records are durable, unread by default and never mutated by the engagement
// core; read toggling happens through the notification endpoints only.
type Notification struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	To             string    `json:"to" gorm:"column:to_user;size:24;index"` // recipient user id (Mongo hex)
	ActorID        string    `json:"actor_id" gorm:"size:24;index"`
	Icon           string    `json:"icon"`
	Title          string    `json:"title"`
	Text           string    `json:"text"`
	ActionableLink string    `json:"actionable_link"`
	DisplayDate    time.Time `json:"display_date"`
	Read           bool      `json:"read" gorm:"default:false;index"`
	Category       string    `json:"category" gorm:"size:30;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}
