package models

type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// User represents a category owner.
type User struct {
	ID   int    `gorm:"primaryKey" json:"id" validate:"gt=0"`
	Name string `gorm:"not null" json:"name" validate:"required"`
	Sex  Sex    `gorm:"type:char(1);not null" json:"sex" validate:"oneof=m f"`
}

func (u *User) TableName() string {
	return "users"
}
