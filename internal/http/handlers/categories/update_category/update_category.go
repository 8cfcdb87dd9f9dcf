package updatecategory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"remindu/internal/core/domain/category"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/update_category"
	"remindu/internal/http/handlers/categories"
	"remindu/internal/http/handlers/response"
)

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
	Category   views.Category   `json:"category"`
	Categories views.Categories `json:"categories"`
	Persisted  bool             `json:"persisted"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	if categoryID == "" {
		response.RenderBadRequest(rw, "invalid category ID")
		return
	}

	input := categories.FieldsInput{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderBadRequest(rw, "invalid request data")
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	fields, err := input.ToFields()
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ID: category.ID(categoryID), Fields: fields})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	response.Render(
		rw,
		Result{
			Category:   views.FromCategory(result.Category),
			Categories: views.FromRegistry(result.Categories),
			Persisted:  result.Persisted,
		},
		http.StatusOK,
	)
}
