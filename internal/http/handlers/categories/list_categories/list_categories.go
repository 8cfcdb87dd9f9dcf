package listcategories

import (
	"net/http"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/list_categories"
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

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	response.Render(rw, views.FromRegistry(result.Categories), http.StatusOK)
}
