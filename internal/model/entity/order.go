package entity

import "time"

// Order 수주. Customer/product names are snapshotted at creation so
// later master-data edits do not rewrite order history.
type Order struct {
	ID           string     `json:"id" gorm:"primaryKey;size:32"`
	OrderNo      string     `json:"order_no" gorm:"size:50;not null;uniqueIndex"`
	OrderDate    time.Time  `json:"order_date" gorm:"not null"`
	CustomerID   *string    `json:"customer_id" gorm:"size:32"`
	CustomerName string     `json:"customer_name" gorm:"size:200"`
	ProductID    *string    `json:"product_id" gorm:"size:32"`
	ProductName  string     `json:"product_name" gorm:"size:200"`
	Quantity     int        `json:"quantity" gorm:"not null"`
	UnitPrice    float64    `json:"unit_price" gorm:"type:decimal(12,2)"`
	TotalPrice   float64    `json:"total_price" gorm:"type:decimal(12,2)"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Status       string     `json:"status" gorm:"size:16;not null;default:pending"`
	Note         string     `json:"note" gorm:"type:text"`
	CreatedBy    string     `json:"created_by" gorm:"size:32"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderStatus 수주 상태
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
	OrderStatusCancelled  = "cancelled"
)
