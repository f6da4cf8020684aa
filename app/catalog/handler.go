package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mytheresa/product-categories/app/api"
	productcatalog "github.com/mytheresa/product-categories/catalog"
	"github.com/mytheresa/product-categories/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
	Message  string    `json:"message,omitempty"`
}

type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type Owner struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type Product struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	CategoryID int      `json:"categoryId"`
	Category   Category `json:"category"`
	Owner      Owner    `json:"owner"`
}

type ProductBrowser interface {
	Browse(criteria productcatalog.Criteria) productcatalog.Result
	Product(id int) (models.FullProduct, error)
}

type CatalogHandler struct {
	browser ProductBrowser
}

func NewCatalogHandler(b ProductBrowser) *CatalogHandler {
	return &CatalogHandler{
		browser: b,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	criteria := productcatalog.DefaultCriteria()
	if owner := r.URL.Query().Get("owner"); owner != "" {
		criteria.Owner = owner
	}
	criteria.Query = r.URL.Query().Get("query")

	res := h.browser.Browse(criteria)

	products := make([]Product, len(res.Products))
	for i, p := range res.Products {
		products[i] = toProduct(p)
	}

	api.OKResponse(w, Response{
		Total:    len(products),
		Products: products,
		Message:  res.Message,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.browser.Product(id)
	if err != nil {
		if errors.Is(err, productcatalog.ErrProductNotFound) {
			api.ErrorResponse(w, http.StatusNotFound, "Product not found")
			return
		}
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.OKResponse(w, toProduct(product))
}

func toProduct(p models.FullProduct) Product {
	return Product{
		ID:         p.ID,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Category: Category{
			ID:    p.Category.ID,
			Title: p.Category.Title,
			Icon:  p.Category.Icon,
		},
		Owner: Owner{
			ID:   p.Owner.ID,
			Name: p.Owner.Name,
			Sex:  string(p.Owner.Sex),
		},
	}
}
