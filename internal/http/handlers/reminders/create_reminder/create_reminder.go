package createreminder

import (
	"encoding/json"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/create_reminder"
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

type Input struct {
	Title       *string `json:"title"`
	Description string  `json:"description"`
	DateTime    *string `json:"dateTime"`
	Type        *string `json:"type"`
	CategoryID  *string `json:"categoryId"`
	RepeatDays  []int   `json:"repeatDays"`
}

type Result struct {
	Reminder  views.Reminder `json:"reminder"`
	Persisted bool           `json:"persisted"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.NilOrNotEmpty),
		validation.Field(&i.CategoryID, validation.NilOrNotEmpty),
		validation.Field(&i.RepeatDays, validation.Length(0, 7)),
	)
}

func (i Input) ToServiceInput() (input service.Input, err error) {
	input.Title = c.FromPointer(i.Title)
	input.Description = i.Description
	if i.DateTime != nil {
		at, err := reminder.ParseDateTime(*i.DateTime)
		if err != nil {
			return input, err
		}
		input.DateTime = c.NewOptional(at, true)
	}
	if i.Type != nil {
		t, err := reminder.ParseType(*i.Type)
		if err != nil {
			return input, err
		}
		input.Type = t
	}
	if i.CategoryID != nil {
		input.CategoryID = c.NewOptional(category.ID(*i.CategoryID), true)
	}
	input.RepeatDays, err = reminder.ParseRepeatDays(i.RepeatDays)
	return input, err
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderBadRequest(rw, "invalid request data")
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	serviceInput, err := input.ToServiceInput()
	if err != nil {
		response.RenderBadRequest(rw, err.Error())
		return
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	response.Render(
		rw,
		Result{Reminder: views.FromReminder(result.Reminder), Persisted: result.Persisted},
		http.StatusCreated,
	)
}
