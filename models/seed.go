package models

import "context"

// SeedUsers returns the fixed set of category owners.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Roma", Sex: SexMale},
		{ID: 2, Name: "Anna", Sex: SexFemale},
		{ID: 3, Name: "Max", Sex: SexMale},
		{ID: 4, Name: "John", Sex: SexMale},
	}
}

// SeedCategories returns the fixed set of categories.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
		{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
		{ID: 4, Title: "Electronics", Icon: "💻", OwnerID: 1},
		{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
	}
}

// SeedProducts returns the fixed set of products.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Milk", CategoryID: 2},
		{ID: 2, Name: "Bread", CategoryID: 1},
		{ID: 3, Name: "Eggs", CategoryID: 1},
		{ID: 4, Name: "Jacket", CategoryID: 5},
		{ID: 5, Name: "Sugar", CategoryID: 1},
		{ID: 6, Name: "Sausage", CategoryID: 1},
		{ID: 7, Name: "Coffee", CategoryID: 2},
		{ID: 8, Name: "Bread maker", CategoryID: 4},
		{ID: 9, Name: "Banana", CategoryID: 3},
		{ID: 10, Name: "Orange juice", CategoryID: 2},
		{ID: 11, Name: "Apple", CategoryID: 3},
		{ID: 12, Name: "Laptop", CategoryID: 4},
		{ID: 13, Name: "Jeans", CategoryID: 5},
		{ID: 14, Name: "T-shirt", CategoryID: 5},
		{ID: 15, Name: "Headphones", CategoryID: 4},
	}
}

// StaticProvider serves the seed dataset from memory.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Users(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SeedUsers(), nil
}

func (p *StaticProvider) Categories(ctx context.Context) ([]Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SeedCategories(), nil
}

func (p *StaticProvider) Products(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SeedProducts(), nil
}
