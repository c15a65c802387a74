package repository

import (
	"context"
	"errors"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository 제품 저장소
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

// Create 제품 등록
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()[:32]
	}
	return translateErr(r.db.WithContext(ctx).Create(product).Error)
}

// UpsertMaterialLink writes the (product, material) link row. The pair
// is unique; a second write for the same pair overwrites
// quantity/unit/note instead of inserting a duplicate.
func (r *ProductRepository) UpsertMaterialLink(ctx context.Context, link *entity.ProductMaterial) error {
	if link.ID == "" {
		link.ID = uuid.New().String()[:32]
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "material_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit", "note"}),
		}).
		Create(link).Error
}

// FindByID 제품 상세 조회
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Paper").
		Preload("Materials.Material").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List 제품 목록 (최신순, 최대 200건)
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Paper").
		Order("created_at DESC").
		Limit(200).
		Find(&products).Error
	return products, err
}

// Count 전체 제품 수
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&count).Error
	return count, err
}

// MaterialLinks 제품의 부자재 연결 조회
func (r *ProductRepository) MaterialLinks(ctx context.Context, productID string) ([]entity.ProductMaterial, error) {
	var links []entity.ProductMaterial
	err := r.db.WithContext(ctx).
		Preload("Material").
		Where("product_id = ?", productID).
		Find(&links).Error
	return links, err
}
