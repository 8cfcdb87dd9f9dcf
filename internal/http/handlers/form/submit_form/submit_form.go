package submitform

import (
	"net/http"
	"time"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/submit_form"
	"remindu/internal/http/handlers/response"
)

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

type Result struct {
	Reminder  views.Reminder `json:"reminder"`
	Persisted bool           `json:"persisted"`
	Form      views.Form     `json:"form"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}
	response.Render(
		rw,
		Result{
			Reminder:  views.FromReminder(result.Reminder),
			Persisted: result.Persisted,
			Form:      views.FromForm(result.State, reminder.WallClock(h.now())),
		},
		http.StatusCreated,
	)
}
