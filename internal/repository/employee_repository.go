package repository

import (
	"context"
	"errors"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepository 사원 저장소
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create 사원 등록
func (r *EmployeeRepository) Create(ctx context.Context, emp *entity.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()[:32]
	}
	return translateErr(r.db.WithContext(ctx).Create(emp).Error)
}

// FindByID 사원 조회
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	var emp entity.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// FindByLogin looks up an active employee by username or employee
// number; both are accepted as the login id.
func (r *EmployeeRepository) FindByLogin(ctx context.Context, loginID string) (*entity.Employee, error) {
	var emp entity.Employee
	err := r.db.WithContext(ctx).
		Where("(username = ? OR emp_no = ?) AND status = ?", loginID, loginID, entity.EmployeeStatusActive).
		First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// CountActive 재직 사원 수
func (r *EmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Employee{}).
		Where("status = ?", entity.EmployeeStatusActive).
		Count(&count).Error
	return count, err
}

// List 사원 목록 (승인 대기 제외, 최신순)
func (r *EmployeeRepository) List(ctx context.Context) ([]entity.Employee, error) {
	var emps []entity.Employee
	err := r.db.WithContext(ctx).
		Where("status <> ?", entity.EmployeeStatusPending).
		Order("created_at DESC").
		Find(&emps).Error
	return emps, err
}
