package models

// Product represents a product in the catalog.
type Product struct {
	ID         int    `gorm:"primaryKey" json:"id" validate:"gt=0"`
	Name       string `gorm:"not null" json:"name" validate:"required"`
	CategoryID int    `gorm:"not null" json:"categoryId" validate:"gt=0"`
}

func (p *Product) TableName() string {
	return "products"
}

// FullProduct is a product joined with its category and the category owner.
type FullProduct struct {
	Product
	Category Category `json:"category"`
	Owner    User     `json:"owner"`
}
