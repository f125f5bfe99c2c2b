package models

import "time"

type WellnessLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"-"`
	Date            time.Time `gorm:"type:date;not null" json:"date"`
	WaterIntake     *int      `json:"water_intake"`
	SleepHours      *int      `json:"sleep_hours"`
	SleepQuality    *int      `json:"sleep_quality"`
	ExerciseMinutes *int      `json:"exercise_minutes"`
	ExerciseType    string    `json:"exercise_type"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
