package models

import "time"

const (
	NotificationPeriodReminder  = "period_reminder"
	NotificationFertilityWindow = "fertility_window"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Type      string    `gorm:"not null" json:"type"`
	Message   string    `gorm:"not null" json:"message"`
	DueDate   time.Time `gorm:"type:date" json:"due_date"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
