package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNameRequired 제품명 누락
var ErrNameRequired = errors.New("product name is required")

// ProductService 제품 서비스. Register is the transactional core: one
// database transaction covering supplier/paper/material upserts, the
// product insert, the material links and the audit row.
type ProductService struct {
	db          *gorm.DB
	catalogRepo *repository.CatalogRepository
	productRepo *repository.ProductRepository
	auditRepo   *repository.AuditLogRepository
	rdb         *redis.Client
}

func NewProductService(db *gorm.DB, catalogRepo *repository.CatalogRepository, productRepo *repository.ProductRepository, auditRepo *repository.AuditLogRepository, rdb *redis.Client) *ProductService {
	return &ProductService{
		db:          db,
		catalogRepo: catalogRepo,
		productRepo: productRepo,
		auditRepo:   auditRepo,
		rdb:         rdb,
	}
}

// Actor 요청 주체 (JWT 클레임 또는 요청 본문에서 전달)
type Actor struct {
	ID   string
	Name string
	IP   string
}

// RegisterProductRequest 제품 등록 요청
type RegisterProductRequest struct {
	Code        string                    `json:"code"`
	Name        string                    `json:"name" binding:"required"`
	Description string                    `json:"description"`
	Price       float64                   `json:"price"`
	Supplier    *repository.SupplierInput `json:"supplier"`
	Paper       *repository.PaperInput    `json:"paper"`
	Materials   []RegisterMaterialInput   `json:"materials"`
	CreatedBy   string                    `json:"created_by"`
}

// RegisterMaterialInput 등록 요청의 부자재 항목
type RegisterMaterialInput struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Unit     string  `json:"unit"`
	Note     string  `json:"note"`
	Quantity float64 `json:"quantity"`
}

// Register persists a new product with its supplier/paper references
// and material links, and writes one audit row, all inside a single
// transaction. Any failure rolls back every row from this call.
//
// Supplier and paper are resolved before the product insert because
// the product's foreign keys reference them; materials are resolved
// after it because the link rows need the product id. The audit row
// goes last so it captures the assigned product id.
func (s *ProductService) Register(ctx context.Context, actor Actor, req *RegisterProductRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", ErrNameRequired
	}

	price := req.Price
	if price < 0 {
		price = 0
	}

	var productID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		catalog := s.catalogRepo.WithTx(tx)
		products := s.productRepo.WithTx(tx)
		audits := s.auditRepo.WithTx(tx)

		// 1) supplier upsert
		var supplierID *string
		if req.Supplier != nil && strings.TrimSpace(req.Supplier.Name) != "" {
			id, err := catalog.ResolveSupplier(ctx, *req.Supplier)
			if err != nil {
				return fmt.Errorf("resolve supplier: %w", err)
			}
			supplierID = &id
		}

		// 2) paper upsert
		var paperID *string
		if req.Paper != nil && strings.TrimSpace(req.Paper.Name) != "" {
			id, err := catalog.ResolvePaper(ctx, *req.Paper)
			if err != nil {
				return fmt.Errorf("resolve paper: %w", err)
			}
			paperID = &id
		}

		// 3) product insert
		product := &entity.Product{
			ID:          uuid.New().String()[:32],
			Code:        req.Code,
			Name:        name,
			Description: req.Description,
			Price:       price,
			SupplierID:  supplierID,
			PaperID:     paperID,
			CreatedBy:   actor.ID,
		}
		if err := products.Create(ctx, product); err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		// 4) material upserts + link rows; entries without a name are
		// skipped, they mean "no reference", not an error
		for _, m := range req.Materials {
			if strings.TrimSpace(m.Name) == "" {
				continue
			}
			materialID, err := catalog.ResolveMaterial(ctx, repository.MaterialInput{
				Name: m.Name,
				Type: m.Type,
				Unit: m.Unit,
				Note: m.Note,
			})
			if err != nil {
				return fmt.Errorf("resolve material: %w", err)
			}
			quantity := m.Quantity
			if quantity < 0 {
				quantity = 0
			}
			link := &entity.ProductMaterial{
				ProductID:  product.ID,
				MaterialID: materialID,
				Quantity:   quantity,
				Unit:       m.Unit,
				Note:       m.Note,
			}
			if err := products.UpsertMaterialLink(ctx, link); err != nil {
				return fmt.Errorf("link material: %w", err)
			}
		}

		// 5) audit log; a failed audit write aborts the registration
		auditEntry := &entity.AuditLog{
			ActorID:   actor.ID,
			ActorName: actor.Name,
			Action:    entity.AuditActionCreateProduct,
			Entity:    "product",
			EntityID:  product.ID,
			Payload:   requestSnapshot(req),
			IP:        actor.IP,
		}
		if err := audits.Create(ctx, auditEntry); err != nil {
			return fmt.Errorf("write audit log: %w", err)
		}

		productID = product.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	s.clearCache(ctx)

	return productID, nil
}

// Get 제품 상세 조회
func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// List 제품 목록 조회
func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// requestSnapshot captures the original request body for the audit row.
func requestSnapshot(req *RegisterProductRequest) entity.JSONB {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil
	}
	var payload entity.JSONB
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

// clearCache 제품 목록 캐시 무효화
func (s *ProductService) clearCache(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, "products:list")
	}
}
