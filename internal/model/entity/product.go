package entity

import "time"

// Product 제품. Supplier/paper references are fixed at registration
// time; either may be null when no reference was supplied.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Code        string    `json:"code" gorm:"size:50"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(12,2);not null;default:0"`
	SupplierID  *string   `json:"supplier_id" gorm:"size:32"`
	PaperID     *string   `json:"paper_id" gorm:"size:32"`
	CreatedBy   string    `json:"created_by" gorm:"size:32"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Supplier  *Supplier         `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Paper     *Paper            `json:"paper,omitempty" gorm:"foreignKey:PaperID"`
	Materials []ProductMaterial `json:"materials,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

// ProductMaterial 제품-부자재 연결. At most one row per
// (product, material) pair; re-registering overwrites quantity/unit/note.
type ProductMaterial struct {
	ID         string  `json:"id" gorm:"primaryKey;size:32"`
	ProductID  string  `json:"product_id" gorm:"size:32;not null;uniqueIndex:idx_product_material"`
	MaterialID string  `json:"material_id" gorm:"size:32;not null;uniqueIndex:idx_product_material"`
	Quantity   float64 `json:"quantity" gorm:"type:decimal(15,4);not null;default:0"`
	Unit       string  `json:"unit" gorm:"size:20"`
	Note       string  `json:"note" gorm:"type:text"`

	Material *Material `json:"material,omitempty" gorm:"foreignKey:MaterialID;constraint:OnDelete:RESTRICT"`
}

func (ProductMaterial) TableName() string {
	return "product_materials"
}
