package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/reminder"
)

func TestRenderServiceError(t *testing.T) {
	cases := []struct {
		id             string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "validation",
			err:            reminder.ErrReminderDescriptionRequired,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"Please enter a reminder description"}`,
		},
		{
			id:             "wrapped-validation",
			err:            fmt.Errorf("could not add: %w", category.ErrCategoryNameRequired),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"Please enter a category name."}`,
		},
		{
			id:             "unknown-category",
			err:            category.ErrCategoryDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"category does not exist"}`,
		},
		{
			id:             "duplicate-category",
			err:            category.ErrCategoryAlreadyExists,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"category already exists"}`,
		},
		{
			id:             "unexpected",
			err:            errors.New("disk on fire"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal error"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rr := httptest.NewRecorder()

			RenderServiceError(rr, testcase.err)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, testcase.expectedBody, rr.Body.String())
		})
	}
}
