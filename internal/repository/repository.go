package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks a unique-constraint violation. Callers may
	// retry the whole operation; the row they raced against exists.
	ErrConflict = errors.New("duplicate record")
)

// translateErr maps driver-level errors onto the package sentinels.
// Requires TranslateError enabled on the gorm config.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

// Repositories 저장소 집합
type Repositories struct {
	Catalog    *CatalogRepository
	Product    *ProductRepository
	AuditLog   *AuditLogRepository
	Employee   *EmployeeRepository
	Customer   *CustomerRepository
	Order      *OrderRepository
	Assignment *AssignmentRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Catalog:    NewCatalogRepository(db),
		Product:    NewProductRepository(db),
		AuditLog:   NewAuditLogRepository(db),
		Employee:   NewEmployeeRepository(db),
		Customer:   NewCustomerRepository(db),
		Order:      NewOrderRepository(db),
		Assignment: NewAssignmentRepository(db),
	}
}
