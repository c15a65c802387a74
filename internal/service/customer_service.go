package service

import (
	"context"
	"fmt"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/google/uuid"
)

// CustomerService 거래처 서비스
type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// CreateCustomerRequest 거래처 등록 요청
type CreateCustomerRequest struct {
	Code       string `json:"code" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category"`
	CEO        string `json:"ceo"`
	BusinessNo string `json:"business_no"`
	Tel        string `json:"tel"`
	Fax        string `json:"fax"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Note       string `json:"note"`
	Status     string `json:"status"`
}

// Create 거래처 등록
func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error) {
	category := req.Category
	if category == "" {
		category = entity.CustomerCategorySales
	}
	status := req.Status
	if status == "" {
		status = "active"
	}

	customer := &entity.Customer{
		ID:         uuid.New().String()[:32],
		Code:       req.Code,
		Name:       req.Name,
		Category:   category,
		CEO:        req.CEO,
		BusinessNo: req.BusinessNo,
		Tel:        req.Tel,
		Fax:        req.Fax,
		Email:      req.Email,
		Address:    req.Address,
		Note:       req.Note,
		Status:     status,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

// List 거래처 목록 조회
func (s *CustomerService) List(ctx context.Context, category, status string) ([]entity.Customer, error) {
	return s.repo.List(ctx, category, status)
}

// UpdateCustomerRequest 거래처 수정 요청
type UpdateCustomerRequest struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	CEO        string `json:"ceo"`
	BusinessNo string `json:"business_no"`
	Tel        string `json:"tel"`
	Fax        string `json:"fax"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Note       string `json:"note"`
	Status     string `json:"status"`
}

// Update 거래처 수정 (전달된 필드만 갱신)
func (s *CustomerService) Update(ctx context.Context, id string, req *UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	if req.Code != "" {
		customer.Code = req.Code
	}
	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Category != "" {
		customer.Category = req.Category
	}
	if req.CEO != "" {
		customer.CEO = req.CEO
	}
	if req.BusinessNo != "" {
		customer.BusinessNo = req.BusinessNo
	}
	if req.Tel != "" {
		customer.Tel = req.Tel
	}
	if req.Fax != "" {
		customer.Fax = req.Fax
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Address != "" {
		customer.Address = req.Address
	}
	if req.Note != "" {
		customer.Note = req.Note
	}
	if req.Status != "" {
		customer.Status = req.Status
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Delete 거래처 삭제
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
