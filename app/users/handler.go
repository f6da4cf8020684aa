package users

import (
	"net/http"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

// UserResponse is one owner filter option.
type UserResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type UserProvider interface {
	Users() []models.User
}

type UserHandler struct {
	catalog UserProvider
}

func NewUserHandler(p UserProvider) *UserHandler {
	return &UserHandler{catalog: p}
}

func (h *UserHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	users := h.catalog.Users()

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:   u.ID,
			Name: u.Name,
			Sex:  string(u.Sex),
		}
	}

	api.OKResponse(w, response)
}
