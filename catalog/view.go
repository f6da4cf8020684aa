package catalog

import "github.com/mytheresa/product-categories/models"

// BuildFullProducts joins every product to its category and to the owner of
// that category. The output keeps the input product order.
func BuildFullProducts(products []models.Product, categories []models.Category, users []models.User) ([]models.FullProduct, error) {
	categoryByID := make(map[int]models.Category, len(categories))
	for _, c := range categories {
		if _, ok := categoryByID[c.ID]; !ok {
			categoryByID[c.ID] = c
		}
	}
	userByID := make(map[int]models.User, len(users))
	for _, u := range users {
		if _, ok := userByID[u.ID]; !ok {
			userByID[u.ID] = u
		}
	}

	rows := make([]models.FullProduct, 0, len(products))
	for _, p := range products {
		category, ok := categoryByID[p.CategoryID]
		if !ok {
			return nil, &LookupError{Entity: "category", ID: p.CategoryID, Referrer: "product", ReferrerID: p.ID}
		}
		owner, ok := userByID[category.OwnerID]
		if !ok {
			return nil, &LookupError{Entity: "owner", ID: category.OwnerID, Referrer: "category", ReferrerID: category.ID}
		}
		rows = append(rows, models.FullProduct{
			Product:  p,
			Category: category,
			Owner:    owner,
		})
	}
	return rows, nil
}
