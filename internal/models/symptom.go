package models

import "time"

type Symptom struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	SymptomType string    `gorm:"not null" json:"symptom_type"`
	Severity    *int      `json:"severity"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
