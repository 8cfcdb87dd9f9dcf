package addcategory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	service "remindu/internal/core/services/add_category"
)

type stubService struct {
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	cat, err := input.Fields.Build("c-1")
	if err != nil {
		return result, err
	}
	registry, err := category.Registry{}.Add(cat)
	return service.Result{Category: cat, Categories: registry, Persisted: true}, err
}

func TestAddCategoryHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "valid",
			body:           `{"name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{Fields: category.Fields{
				Name:  "Gym",
				Icon:  category.IconFitnessCenter,
				Color: c.NewOptional(category.MatteMint, true),
			}},
		},
		{
			id:             "missing-name",
			body:           `{"name": "", "icon": "fitness_center", "color": "#E0F2F1"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedInput: &service.Input{Fields: category.Fields{
				Icon:  category.IconFitnessCenter,
				Color: c.NewOptional(category.MatteMint, true),
			}},
		},
		{
			id:             "missing-color",
			body:           `{"name": "Gym", "icon": "fitness_center"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedInput: &service.Input{Fields: category.Fields{
				Name: "Gym",
				Icon: category.IconFitnessCenter,
			}},
		},
		{
			id:             "unknown-icon",
			body:           `{"name": "Gym", "icon": "rocket", "color": "#E0F2F1"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "empty-color",
			body:           `{"name": "Gym", "icon": "fitness_center", "color": ""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid-json",
			body:           `[]`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{}
			req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(testcase.body))
			rr := httptest.NewRecorder()

			New(stub).ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code, rr.Body.String())
			assert.Equal(t, testcase.expectedInput, stub.input)
		})
	}
}

func TestAddCategoryResponse(t *testing.T) {
	req := httptest.NewRequest(
		http.MethodPost,
		"/categories",
		strings.NewReader(`{"name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"}`),
	)
	rr := httptest.NewRecorder()

	New(&stubService{}).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{
		"category": {"id": "c-1", "name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"},
		"categories": {
			"categories": [{"id": "c-1", "name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"}],
			"selected": null
		},
		"persisted": true
	}`, rr.Body.String())
}
