package repository

import (
	"context"
	"errors"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRepository 거래처 저장소
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create 거래처 등록
func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()[:32]
	}
	return translateErr(r.db.WithContext(ctx).Create(customer).Error)
}

// FindByID 거래처 조회
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// List 거래처 목록 (구분/상태 필터, 최신순)
func (r *CustomerRepository) List(ctx context.Context, category, status string) ([]entity.Customer, error) {
	var customers []entity.Customer
	query := r.db.WithContext(ctx).Model(&entity.Customer{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

// Update 거래처 수정
func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return translateErr(r.db.WithContext(ctx).Save(customer).Error)
}

// Delete 거래처 삭제
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}
