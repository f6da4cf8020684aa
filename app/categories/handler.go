package categories

import (
	"net/http"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type CategoryResponse struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID int    `json:"ownerId"`
}

type CategoryProvider interface {
	Categories() []models.Category
}

type CategoryHandler struct {
	catalog CategoryProvider
}

func NewCategoryHandler(c CategoryProvider) *CategoryHandler {
	return &CategoryHandler{catalog: c}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories := h.catalog.Categories()

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:      c.ID,
			Title:   c.Title,
			Icon:    c.Icon,
			OwnerID: c.OwnerID,
		}
	}

	api.OKResponse(w, response)
}
