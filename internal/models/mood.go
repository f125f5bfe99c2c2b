package models

import "time"

const (
	MoodHappy     = "happy"
	MoodCalm      = "calm"
	MoodEnergetic = "energetic"
	MoodTired     = "tired"
	MoodAnxious   = "anxious"
	MoodIrritable = "irritable"
	MoodSad       = "sad"
	MoodStressed  = "stressed"
)

type Mood struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	MoodType  string    `gorm:"not null" json:"mood_type"`
	Intensity *int      `json:"intensity"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func IsValidMoodType(value string) bool {
	switch value {
	case MoodHappy, MoodCalm, MoodEnergetic, MoodTired, MoodAnxious, MoodIrritable, MoodSad, MoodStressed:
		return true
	default:
		return false
	}
}
