package repository

import (
	"context"
	"errors"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository 수주 저장소
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create 수주 등록
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()[:32]
	}
	return translateErr(r.db.WithContext(ctx).Create(order).Error)
}

// FindByID 수주 조회
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// List 수주 목록 (최신순, 최대 50건)
func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(50).
		Find(&orders).Error
	return orders, err
}

// CountOpen 취소 제외 수주 수
func (r *OrderRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("status <> ?", entity.OrderStatusCancelled).
		Count(&count).Error
	return count, err
}

// ListAll 전체 수주 조회 (엑셀 내보내기용)
func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Order("order_date DESC, created_at DESC").
		Find(&orders).Error
	return orders, err
}
