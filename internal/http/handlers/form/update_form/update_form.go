package updateform

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/update_form"
	"remindu/internal/http/handlers/response"
)

var ErrUnknownEventType = errors.New("unknown event type")

type Handler struct {
	service services.Service[service.Input, service.Result]
	now     func() time.Time
}

func New(
	service services.Service[service.Input, service.Result],
	now func() time.Time,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Handler{service: service, now: now}
}

// Input is a single form event. Type selects the event, the remaining
// fields carry its argument.
type Input struct {
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	DateTime     *string `json:"dateTime"`
	ReminderType *string `json:"reminderType"`
	Enabled      *bool   `json:"enabled"`
	Day          *int    `json:"day"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Type, validation.Required, validation.Length(1, 64)),
	)
}

// ToEvent builds the form event described by the input. Category events
// are not accepted here; the selection is changed through the category
// endpoints so it gets persisted.
func (i Input) ToEvent() (form.Event, error) {
	switch i.Type {
	case form.DescriptionChanged{}.Name():
		if i.Description == nil {
			return nil, errors.New("description is required")
		}
		return form.DescriptionChanged{Description: *i.Description}, nil
	case form.DateTimeSelected{}.Name():
		if i.DateTime == nil {
			return nil, errors.New("dateTime is required")
		}
		at, err := reminder.ParseDateTime(*i.DateTime)
		if err != nil {
			return nil, err
		}
		return form.DateTimeSelected{DateTime: at}, nil
	case form.DateTimeCleared{}.Name():
		return form.DateTimeCleared{}, nil
	case form.TypeSelected{}.Name():
		if i.ReminderType == nil {
			return nil, errors.New("reminderType is required")
		}
		t, err := reminder.ParseType(*i.ReminderType)
		if err != nil {
			return nil, err
		}
		return form.TypeSelected{Type: t}, nil
	case form.RepeatToggled{}.Name():
		if i.Enabled == nil {
			return nil, errors.New("enabled is required")
		}
		return form.RepeatToggled{Enabled: *i.Enabled}, nil
	case form.RepeatDialogOpened{}.Name():
		return form.RepeatDialogOpened{}, nil
	case form.RepeatDayToggled{}.Name():
		if i.Day == nil {
			return nil, errors.New("day is required")
		}
		return form.RepeatDayToggled{Day: reminder.Weekday(*i.Day)}, nil
	case form.RepeatAllSelected{}.Name():
		return form.RepeatAllSelected{}, nil
	case form.RepeatCleared{}.Name():
		return form.RepeatCleared{}, nil
	case form.RepeatDialogConfirmed{}.Name():
		return form.RepeatDialogConfirmed{}, nil
	case form.RepeatDialogDismissed{}.Name():
		return form.RepeatDialogDismissed{}, nil
	}
	return nil, ErrUnknownEventType
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
	event, err := input.ToEvent()
	if err != nil {
		response.RenderBadRequest(rw, err.Error())
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Event: event})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	response.Render(rw, views.FromForm(result.State, reminder.WallClock(h.now())), http.StatusOK)
}
