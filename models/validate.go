package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateDataset checks field constraints and id uniqueness of the three
// collections. Referential integrity is checked when the rows are joined.
func ValidateDataset(users []User, categories []Category, products []Product) error {
	if err := validate.Var(users, "unique=ID"); err != nil {
		return fmt.Errorf("users: duplicate id: %w", err)
	}
	if err := validate.Var(categories, "unique=ID"); err != nil {
		return fmt.Errorf("categories: duplicate id: %w", err)
	}
	if err := validate.Var(products, "unique=ID"); err != nil {
		return fmt.Errorf("products: duplicate id: %w", err)
	}

	for _, u := range users {
		if err := validate.Struct(u); err != nil {
			return fmt.Errorf("user %d: %w", u.ID, err)
		}
	}
	for _, c := range categories {
		if err := validate.Struct(c); err != nil {
			return fmt.Errorf("category %d: %w", c.ID, err)
		}
	}
	for _, p := range products {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("product %d: %w", p.ID, err)
		}
	}
	return nil
}
