package entity

import "time"

// AuditLog 감사 로그. Append-only: one row per mutating operation,
// never updated or deleted.
type AuditLog struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	ActorID   string    `json:"actor_id" gorm:"size:32"`
	ActorName string    `json:"actor_name" gorm:"size:100"`
	Action    string    `json:"action" gorm:"size:50;not null;index:idx_audit_entity,priority:3"`
	Entity    string    `json:"entity" gorm:"size:50;not null;index:idx_audit_entity,priority:1"`
	EntityID  string    `json:"entity_id" gorm:"size:32;not null;index:idx_audit_entity,priority:2"`
	Payload   JSONB     `json:"payload" gorm:"type:jsonb"`
	IP        string    `json:"ip" gorm:"size:45"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditAction 감사 로그 액션
const (
	AuditActionCreateProduct = "create_product"
)
