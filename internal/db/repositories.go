package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Plans      *PlanRepository
	SetRecords *SetRecordRepository
	DayStatus  *DayStatusRepository
	Sessions   *SessionRepository
	Creatine   *CreatineRepository
	SyncQueue  *SyncQueueRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Plans:      NewPlanRepository(database),
		SetRecords: NewSetRecordRepository(database),
		DayStatus:  NewDayStatusRepository(database),
		Sessions:   NewSessionRepository(database),
		Creatine:   NewCreatineRepository(database),
		SyncQueue:  NewSyncQueueRepository(database),
	}
}
