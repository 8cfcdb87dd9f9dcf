package selectcategory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/select_category"
	"remindu/internal/http/handlers/response"
)

// Handler selects the category named in the URL. Routes without a
// category ID clear the selection.
type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Categories views.Categories `json:"categories"`
	Persisted  bool             `json:"persisted"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := service.Input{}
	if categoryID := chi.URLParam(r, "categoryID"); categoryID != "" {
		input.ID = c.NewOptional(category.ID(categoryID), true)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	response.Render(
		rw,
		Result{Categories: views.FromRegistry(result.Categories), Persisted: result.Persisted},
		http.StatusOK,
	)
}
