package calendar

import (
	"context"

	"github.com/gajikita/selaras-backend/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	calendar.EventRepository
}

func NewCalendarService(eventRepository calendar.EventRepository) calendar.CalendarService {
	return &CalendarServiceImpl{EventRepository: eventRepository}
}

// ListEvents implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListEvents(ctx context.Context, filter calendar.EventFilter) ([]calendar.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.EventRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]calendar.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, calendar.EventResponse{
			ID:                   ev.ID,
			Title:                ev.Title,
			Description:          ev.Description,
			StartDate:            ev.StartDate.Format("2006-01-02"),
			EndDate:              ev.EndDate.Format("2006-01-02"),
			Type:                 string(ev.Type),
			Synced:               ev.Synced,
			EarliestAttendanceID: ev.EarliestAttendanceID,
			LatestAttendanceID:   ev.LatestAttendanceID,
		})
	}
	return responses, nil
}
