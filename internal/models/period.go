package models

import "time"

const (
	FlowLight     = "light"
	FlowModerate  = "moderate"
	FlowHeavy     = "heavy"
	FlowVeryHeavy = "very_heavy"
)

type Period struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"-"`
	StartDate     time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate       *time.Time `gorm:"type:date" json:"end_date"`
	FlowIntensity string     `json:"flow_intensity"`
	PainLevel     *int       `json:"pain_level"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func IsValidFlowIntensity(value string) bool {
	switch value {
	case "", FlowLight, FlowModerate, FlowHeavy, FlowVeryHeavy:
		return true
	default:
		return false
	}
}
