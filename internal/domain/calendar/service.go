package calendar

import "context"

type CalendarService interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]EventResponse, error)
}
