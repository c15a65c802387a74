package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository 마스터 카탈로그 (업체/용지/부자재) 저장소.
// Resolve* methods implement upsert-by-name: a lookup on the unique
// name column, a coalesce-merge update when found, an insert when not.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// WithTx returns a copy bound to the given transaction handle.
func (r *CatalogRepository) WithTx(tx *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: tx}
}

// SupplierInput 업체 upsert 입력
type SupplierInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// PaperInput 용지 upsert 입력
type PaperInput struct {
	Name        string `json:"name"`
	Size        string `json:"size"`
	Weight      string `json:"weight"`
	Description string `json:"description"`
}

// MaterialInput 부자재 upsert 입력
type MaterialInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Unit string `json:"unit"`
	Note string `json:"note"`
}

// ResolveSupplier finds or creates a supplier by exact name and
// returns its id. Fields supplied on an existing row overwrite the
// stored values; omitted fields are kept (coalesce merge).
func (r *CatalogRepository) ResolveSupplier(ctx context.Context, in SupplierInput) (string, error) {
	name := strings.TrimSpace(in.Name)

	var existing entity.Supplier
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{}
		if in.Contact != "" {
			updates["contact"] = in.Contact
		}
		if in.Phone != "" {
			updates["phone"] = in.Phone
		}
		if in.Email != "" {
			updates["email"] = in.Email
		}
		if in.Address != "" {
			updates["address"] = in.Address
		}
		if len(updates) > 0 {
			if err := r.db.WithContext(ctx).Model(&entity.Supplier{}).
				Where("id = ?", existing.ID).
				Updates(updates).Error; err != nil {
				return "", err
			}
		}
		return existing.ID, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		supplier := &entity.Supplier{
			ID:      uuid.New().String()[:32],
			Name:    name,
			Contact: in.Contact,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: in.Address,
		}
		if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
			return "", translateErr(err)
		}
		return supplier.ID, nil

	default:
		return "", err
	}
}

// ResolvePaper finds or creates a paper by exact name. Same merge
// semantics as ResolveSupplier.
func (r *CatalogRepository) ResolvePaper(ctx context.Context, in PaperInput) (string, error) {
	name := strings.TrimSpace(in.Name)

	var existing entity.Paper
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{}
		if in.Size != "" {
			updates["size"] = in.Size
		}
		if in.Weight != "" {
			updates["weight"] = in.Weight
		}
		if in.Description != "" {
			updates["description"] = in.Description
		}
		if len(updates) > 0 {
			if err := r.db.WithContext(ctx).Model(&entity.Paper{}).
				Where("id = ?", existing.ID).
				Updates(updates).Error; err != nil {
				return "", err
			}
		}
		return existing.ID, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		paper := &entity.Paper{
			ID:          uuid.New().String()[:32],
			Name:        name,
			Size:        in.Size,
			Weight:      in.Weight,
			Description: in.Description,
		}
		if err := r.db.WithContext(ctx).Create(paper).Error; err != nil {
			return "", translateErr(err)
		}
		return paper.ID, nil

	default:
		return "", err
	}
}

// ResolveMaterial finds or creates a material by exact name. Same
// merge semantics as ResolveSupplier.
func (r *CatalogRepository) ResolveMaterial(ctx context.Context, in MaterialInput) (string, error) {
	name := strings.TrimSpace(in.Name)

	var existing entity.Material
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{}
		if in.Type != "" {
			updates["type"] = in.Type
		}
		if in.Unit != "" {
			updates["unit"] = in.Unit
		}
		if in.Note != "" {
			updates["note"] = in.Note
		}
		if len(updates) > 0 {
			if err := r.db.WithContext(ctx).Model(&entity.Material{}).
				Where("id = ?", existing.ID).
				Updates(updates).Error; err != nil {
				return "", err
			}
		}
		return existing.ID, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		material := &entity.Material{
			ID:   uuid.New().String()[:32],
			Name: name,
			Type: in.Type,
			Unit: in.Unit,
			Note: in.Note,
		}
		if err := r.db.WithContext(ctx).Create(material).Error; err != nil {
			return "", translateErr(err)
		}
		return material.ID, nil

	default:
		return "", err
	}
}

// CreateSupplier 업체 직접 등록
func (r *CatalogRepository) CreateSupplier(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()[:32]
	}
	return translateErr(r.db.WithContext(ctx).Create(supplier).Error)
}

// SearchSuppliers 업체 검색 (이름 부분일치, 최대 50건)
func (r *CatalogRepository) SearchSuppliers(ctx context.Context, keyword string) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	query := r.db.WithContext(ctx).Model(&entity.Supplier{})
	if keyword != "" {
		query = query.Where("name ILIKE ?", "%"+keyword+"%")
	}
	err := query.Order("name ASC").Limit(50).Find(&suppliers).Error
	return suppliers, err
}

// FindSupplierByName 이름으로 업체 조회
func (r *CatalogRepository) FindSupplierByName(ctx context.Context, name string) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindMaterialByName 이름으로 부자재 조회
func (r *CatalogRepository) FindMaterialByName(ctx context.Context, name string) (*entity.Material, error) {
	var material entity.Material
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}
