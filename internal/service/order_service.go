package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// OrderService 수주 서비스
type OrderService struct {
	repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// CreateOrderRequest 수주 등록 요청
type CreateOrderRequest struct {
	OrderNo      string  `json:"order_no" binding:"required"`
	OrderDate    string  `json:"order_date"` // YYYY-MM-DD, 생략 시 오늘
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice    float64 `json:"unit_price"`
	DeliveryDate string  `json:"delivery_date"`
	Note         string  `json:"note"`
}

// Create 수주 등록 (order_no 중복 시 ErrConflict)
func (s *OrderService) Create(ctx context.Context, userID string, req *CreateOrderRequest) (*entity.Order, error) {
	orderDate := time.Now()
	if req.OrderDate != "" {
		if t, err := time.Parse("2006-01-02", req.OrderDate); err == nil {
			orderDate = t
		}
	}

	order := &entity.Order{
		ID:           uuid.New().String()[:32],
		OrderNo:      req.OrderNo,
		OrderDate:    orderDate,
		CustomerName: req.CustomerName,
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
		UnitPrice:    req.UnitPrice,
		TotalPrice:   float64(req.Quantity) * req.UnitPrice,
		Status:       entity.OrderStatusPending,
		Note:         req.Note,
		CreatedBy:    userID,
	}
	if req.CustomerID != "" {
		order.CustomerID = &req.CustomerID
	}
	if req.ProductID != "" {
		order.ProductID = &req.ProductID
	}
	if req.DeliveryDate != "" {
		if t, err := time.Parse("2006-01-02", req.DeliveryDate); err == nil {
			order.DeliveryDate = &t
		}
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// List 수주 목록 조회
func (s *OrderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.repo.List(ctx)
}

var orderExportHeaders = []string{
	"수주번호", "수주일", "거래처", "제품", "수량", "단가", "금액", "납기일", "상태", "비고",
}

// ExportXLSX 수주 내역 엑셀 생성
func (s *OrderService) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	f := excelize.NewFile()
	sheet := "수주내역"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	for i, h := range orderExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for i, order := range orders {
		row := i + 2
		delivery := ""
		if order.DeliveryDate != nil {
			delivery = order.DeliveryDate.Format("2006-01-02")
		}
		values := []interface{}{
			order.OrderNo,
			order.OrderDate.Format("2006-01-02"),
			order.CustomerName,
			order.ProductName,
			order.Quantity,
			order.UnitPrice,
			order.TotalPrice,
			delivery,
			order.Status,
			order.Note,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}

	return f, nil
}
