package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

type User struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	AverageCycleLength  *int       `json:"average_cycle_length"`
	AveragePeriodLength *int       `json:"average_period_length"`
	LastPeriodStart     *time.Time `gorm:"type:date" json:"last_period_start"`
	CreatedAt           time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
