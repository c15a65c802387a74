package entity

import "time"

// Employee 사원 계정
type Employee struct {
	ID           string     `json:"id" gorm:"primaryKey;size:32"`
	EmpNo        string     `json:"emp_no" gorm:"size:20;not null;uniqueIndex"`
	Username     string     `json:"username" gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Name         string     `json:"name" gorm:"size:50;not null"`
	Dept         string     `json:"dept" gorm:"size:50"`
	Position     string     `json:"position" gorm:"size:50"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Email        string     `json:"email" gorm:"size:100"`
	JoinDate     *time.Time `json:"join_date"`
	Status       string     `json:"status" gorm:"size:16;not null;default:active"`
	Role         string     `json:"role" gorm:"size:16;not null;default:viewer"`
	Perms        StringList `json:"perms" gorm:"type:jsonb"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeStatus 사원 상태
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
	EmployeeStatusPending  = "pending"
)

// EmployeeRole 사원 역할
const (
	EmployeeRoleViewer  = "viewer"
	EmployeeRoleStaff   = "staff"
	EmployeeRoleManager = "manager"
	EmployeeRoleAdmin   = "admin"
)
