// Package catalog joins products with their categories and owners and
// narrows the joined rows by owner and search query.
package catalog

import (
	"context"
	"fmt"

	"github.com/mytheresa/product-categories/models"
)

// NoMatchingMessage is shown instead of an empty table.
const NoMatchingMessage = "No products matching selected criteria"

// Provider supplies the three catalog collections.
type Provider interface {
	Users(ctx context.Context) ([]models.User, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context) ([]models.Product, error)
}

// Result is one filtered view of the catalog.
type Result struct {
	Products []models.FullProduct
	Message  string
}

// Catalog holds an immutable, already joined dataset.
type Catalog struct {
	users      []models.User
	categories []models.Category
	rows       []models.FullProduct
}

// Load fetches the collections from p, validates them and joins them.
// A broken reference is returned as a *LookupError.
func Load(ctx context.Context, p Provider) (*Catalog, error) {
	users, err := p.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	categories, err := p.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := p.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return New(users, categories, products)
}

func New(users []models.User, categories []models.Category, products []models.Product) (*Catalog, error) {
	if err := models.ValidateDataset(users, categories, products); err != nil {
		return nil, err
	}
	rows, err := BuildFullProducts(products, categories, users)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		users:      users,
		categories: categories,
		rows:       rows,
	}, nil
}

// Owners lists the owner filter options: AllOwners first, then every user
// name in dataset order.
func (c *Catalog) Owners() []string {
	owners := make([]string, 0, len(c.users)+1)
	owners = append(owners, AllOwners)
	for _, u := range c.users {
		owners = append(owners, u.Name)
	}
	return owners
}

func (c *Catalog) Users() []models.User {
	return append([]models.User(nil), c.users...)
}

func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Browse applies criteria to the joined rows.
func (c *Catalog) Browse(criteria Criteria) Result {
	rows := FilterProducts(c.rows, criteria)
	res := Result{Products: rows}
	if len(rows) == 0 {
		res.Message = NoMatchingMessage
	}
	return res
}

// Product returns the joined row of the product with the given id.
func (c *Catalog) Product(id int) (models.FullProduct, error) {
	for _, r := range c.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return models.FullProduct{}, ErrProductNotFound
}
