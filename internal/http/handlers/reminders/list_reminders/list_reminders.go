package listreminders

import (
	"net/http"

	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/views"
	"remindu/internal/core/services"
	service "remindu/internal/core/services/list_reminders"
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
	Reminders  []views.Reminder `json:"reminders"`
	TotalCount uint             `json:"totalCount"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		response.RenderBadRequest(rw, "invalid date query parameter")
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Date: date})
	if err != nil {
		response.RenderServiceError(rw, err)
		return
	}

	response.Render(
		rw,
		Result{Reminders: views.FromReminders(result.Reminders), TotalCount: result.TotalCount},
		http.StatusOK,
	)
}

func parseDate(raw string) (date c.Optional[reminder.Date], err error) {
	if raw == "" {
		return date, nil
	}
	d, err := reminder.ParseDate(raw)
	if err != nil {
		return date, err
	}
	return c.NewOptional(d, true), nil
}
