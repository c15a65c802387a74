package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
)

// StatsService 대시보드 통계 서비스
type StatsService struct {
	empRepo        *repository.EmployeeRepository
	productRepo    *repository.ProductRepository
	orderRepo      *repository.OrderRepository
	assignmentRepo *repository.AssignmentRepository
}

func NewStatsService(empRepo *repository.EmployeeRepository, productRepo *repository.ProductRepository, orderRepo *repository.OrderRepository, assignmentRepo *repository.AssignmentRepository) *StatsService {
	return &StatsService{
		empRepo:        empRepo,
		productRepo:    productRepo,
		orderRepo:      orderRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Stats 대시보드 요약 수치
type Stats struct {
	Employees   int64 `json:"employees"`
	Products    int64 `json:"products"`
	Orders      int64 `json:"orders"`
	Assignments int64 `json:"assignments"`
}

// Overview counts active employees, products, open orders and today's
// worker assignments for the portal dashboard.
func (s *StatsService) Overview(ctx context.Context) (*Stats, error) {
	employees, err := s.empRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	orders, err := s.orderRepo.CountOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	assignments, err := s.assignmentRepo.CountByDate(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("count assignments: %w", err)
	}

	return &Stats{
		Employees:   employees,
		Products:    products,
		Orders:      orders,
		Assignments: assignments,
	}, nil
}
