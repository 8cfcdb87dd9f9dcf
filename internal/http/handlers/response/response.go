package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"remindu/internal/core/domain/category"
	e "remindu/internal/core/domain/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderBadRequest(rw http.ResponseWriter, msg string) {
	RenderError(rw, msg, http.StatusBadRequest)
}

// RenderServiceError maps an error returned by a service to a response.
// Validation errors carry a message meant for the user.
func RenderServiceError(rw http.ResponseWriter, err error) {
	var validationErr *e.ValidationError
	switch {
	case errors.As(err, &validationErr):
		RenderError(rw, validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, category.ErrCategoryDoesNotExist):
		RenderError(rw, "category does not exist", http.StatusNotFound)
	case errors.Is(err, category.ErrCategoryAlreadyExists):
		RenderError(rw, "category already exists", http.StatusConflict)
	default:
		RenderInternalError(rw)
	}
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
