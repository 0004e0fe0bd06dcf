package calendar

import "errors"

var ErrEventNotFound = errors.New("calendar event not found")
