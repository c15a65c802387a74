package entity

import "time"

// WorkerAssignment 작업자 편성
type WorkerAssignment struct {
	ID            string     `json:"id" gorm:"primaryKey;size:32"`
	Date          time.Time  `json:"date" gorm:"type:date;not null;index"`
	Process       string     `json:"process" gorm:"size:20;not null"`
	ProcessPerm   string     `json:"process_perm" gorm:"size:50"`
	Machine       string     `json:"machine" gorm:"size:50;not null"`
	Team          string     `json:"team" gorm:"size:8;not null"`
	Shift         string     `json:"shift" gorm:"size:16;not null"`
	StartTime     string     `json:"start" gorm:"size:8"`
	EndTime       string     `json:"end" gorm:"size:8"`
	Workers       StringList `json:"workers" gorm:"type:jsonb;not null"`
	CreatedBy     string     `json:"created_by" gorm:"size:32"`
	CreatedByName string     `json:"created_by_name" gorm:"size:50"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (WorkerAssignment) TableName() string {
	return "worker_assignments"
}

// AssignmentShift 근무조
const (
	ShiftDay   = "day"
	ShiftNight = "night"
)
