package http

import (
	"net/http"

	"github.com/gajikita/selaras-backend/internal/domain/calendar"
	"github.com/gajikita/selaras-backend/internal/handler/http/response"
)

type CalendarHandler interface {
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

func (h *calendarHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	var filter calendar.EventFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("type"); v != "" {
		filter.Type = &v
	}

	result, err := h.calendarService.ListEvents(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
