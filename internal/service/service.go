package service

import (
	"context"

	"github.com/MyeongsupWorkSpace/sepnp/internal/config"
	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services 서비스 집합
type Services struct {
	Auth       *AuthService
	Product    *ProductService
	Supplier   *SupplierService
	Customer   *CustomerService
	Order      *OrderService
	Assignment *AssignmentService
	Audit      *AuditService
	Stats      *StatsService
}

// NewServices 서비스 집합 생성
func NewServices(db *gorm.DB, repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.Employee, cfg),
		Product:    NewProductService(db, repos.Catalog, repos.Product, repos.AuditLog, rdb),
		Supplier:   NewSupplierService(repos.Catalog),
		Customer:   NewCustomerService(repos.Customer),
		Order:      NewOrderService(repos.Order),
		Assignment: NewAssignmentService(repos.Assignment),
		Audit:      NewAuditService(repos.AuditLog),
		Stats:      NewStatsService(repos.Employee, repos.Product, repos.Order, repos.Assignment),
	}
}

// SupplierService 업체 서비스
type SupplierService struct {
	catalogRepo *repository.CatalogRepository
}

func NewSupplierService(catalogRepo *repository.CatalogRepository) *SupplierService {
	return &SupplierService{catalogRepo: catalogRepo}
}

// Create 업체 직접 등록 (이름 중복 시 ErrConflict)
func (s *SupplierService) Create(ctx context.Context, supplier *entity.Supplier) error {
	return s.catalogRepo.CreateSupplier(ctx, supplier)
}

// Search 업체 검색
func (s *SupplierService) Search(ctx context.Context, keyword string) ([]entity.Supplier, error) {
	return s.catalogRepo.SearchSuppliers(ctx, keyword)
}

// AuditService 감사 로그 조회 서비스
type AuditService struct {
	auditRepo *repository.AuditLogRepository
}

func NewAuditService(auditRepo *repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// AuditListResult 감사 로그 목록 결과
type AuditListResult struct {
	Items    []entity.AuditLog `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// FindByEntity 엔티티별 감사 로그 조회
func (s *AuditService) FindByEntity(ctx context.Context, entityType, entityID string, page, pageSize int) (*AuditListResult, error) {
	items, total, err := s.auditRepo.FindByEntity(ctx, entityType, entityID, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &AuditListResult{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}
