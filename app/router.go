package app

import (
	"net/http"

	"github.com/rs/zerolog"

	catalogapi "github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/app/categories"
	"github.com/mytheresa/product-categories/app/users"
	"github.com/mytheresa/product-categories/catalog"
)

// NewRouter wires the catalog handlers onto a ServeMux.
func NewRouter(c *catalog.Catalog, log zerolog.Logger) http.Handler {
	catHandler := catalogapi.NewCatalogHandler(c)
	categoryHandler := categories.NewCategoryHandler(c)
	userHandler := users.NewUserHandler(c)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /users", userHandler.HandleGetAll)

	return api.LogRequests(log, mux)
}
