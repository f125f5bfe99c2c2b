package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Periods       *PeriodRepository
	WellnessLogs  *WellnessLogRepository
	Symptoms      *SymptomRepository
	Moods         *MoodRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Periods:       NewPeriodRepository(database),
		WellnessLogs:  NewWellnessLogRepository(database),
		Symptoms:      NewSymptomRepository(database),
		Moods:         NewMoodRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
