package entity

import "time"

// Customer 거래처
type Customer struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	Code       string    `json:"code" gorm:"size:50;not null;uniqueIndex"`
	Name       string    `json:"name" gorm:"size:200;not null"`
	Category   string    `json:"category" gorm:"size:20;not null;default:sales;index"`
	CEO        string    `json:"ceo" gorm:"size:100"`
	BusinessNo string    `json:"business_no" gorm:"size:20"`
	Tel        string    `json:"tel" gorm:"size:20"`
	Fax        string    `json:"fax" gorm:"size:20"`
	Email      string    `json:"email" gorm:"size:100"`
	Address    string    `json:"address" gorm:"type:text"`
	Note       string    `json:"note" gorm:"type:text"`
	Status     string    `json:"status" gorm:"size:16;not null;default:active;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// CustomerCategory 거래처 구분
const (
	CustomerCategorySales    = "sales"
	CustomerCategoryPurchase = "purchase"
	CustomerCategoryBoth     = "both"
)
