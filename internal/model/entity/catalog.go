package entity

import "time"

// Supplier 납품업체. Name is the natural key: product registration
// upserts suppliers by exact name match.
type Supplier struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Contact   string    `json:"contact" gorm:"size:100"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Email     string    `json:"email" gorm:"size:100"`
	Address   string    `json:"address" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// Paper 용지 (stock material). Upserted by name like Supplier.
type Paper struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Name        string    `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Size        string    `json:"size" gorm:"size:50"`
	Weight      string    `json:"weight" gorm:"size:50"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Paper) TableName() string {
	return "papers"
}

// Material 부자재. Upserted by name like Supplier.
type Material struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	Name      string    `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Type      string    `json:"type" gorm:"size:50"`
	Unit      string    `json:"unit" gorm:"size:20"`
	Note      string    `json:"note" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Material) TableName() string {
	return "materials"
}
