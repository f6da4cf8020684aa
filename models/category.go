package models

// Category represents a product category.
// Every category is owned by exactly one user.
type Category struct {
	ID      int    `gorm:"primaryKey" json:"id" validate:"gt=0"`
	Title   string `gorm:"not null" json:"title" validate:"required"`
	Icon    string `gorm:"not null" json:"icon"`
	OwnerID int    `gorm:"not null" json:"ownerId" validate:"gt=0"`
}

func (c *Category) TableName() string {
	return "categories"
}
