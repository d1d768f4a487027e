package handlers

import (
	"net/http"

	"newsapi/internal/middleware"
	"newsapi/internal/services"
	"newsapi/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetAll
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} map[string][]models.User
// @Failure      500 {object} helpers.Message
// @Router       /api/users [get]
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetAll(r.Context())
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"users": users})
}

// GetByUsername
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {object} map[string]models.User
// @Failure      404 {object} helpers.Message
// @Router       /api/users/{username} [get]
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetByUsername(r.Context(), mux.Vars(r)["username"])
	if err != nil {
		middleware.HandleError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"user": u})
}
