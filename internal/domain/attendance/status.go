package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusLeave   Status = "leave"
)

// ParseStatus normalizes a source status label. The bool reports whether the
// label is one of the recognized statuses.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPresent:
		return StatusPresent, true
	case StatusAbsent:
		return StatusAbsent, true
	case StatusLate:
		return StatusLate, true
	case StatusLeave:
		return StatusLeave, true
	}
	return "", false
}

// ComputeStatus is the single source of truth for the effective attendance
// status, both at import time and whenever a persisted row is displayed. The
// stored status column is not authoritative; this derivation is.
//
// Leave always wins. No check-in means absent. A check-in strictly after
// 09:00:00 is late; at or before it is present.
func ComputeStatus(source Status, checkIn *time.Time) Status {
	if source == StatusLeave {
		return StatusLeave
	}
	if checkIn == nil {
		return StatusAbsent
	}
	cutoff := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 9, 0, 0, 0, checkIn.Location())
	if checkIn.After(cutoff) {
		return StatusLate
	}
	return StatusPresent
}

// SynthesizeTimes derives check-in/check-out instants from the imported
// status. The machine reports status labels only, so punch times are fixed
// by policy: present 08:00-17:00, late 09:15-17:00, absent/leave none.
func SynthesizeTimes(date time.Time, status Status) (checkIn, checkOut *time.Time) {
	switch status {
	case StatusAbsent, StatusLeave:
		return nil, nil
	case StatusLate:
		in := time.Date(date.Year(), date.Month(), date.Day(), 9, 15, 0, 0, date.Location())
		out := time.Date(date.Year(), date.Month(), date.Day(), 17, 0, 0, 0, date.Location())
		return &in, &out
	default:
		in := time.Date(date.Year(), date.Month(), date.Day(), 8, 0, 0, 0, date.Location())
		out := time.Date(date.Year(), date.Month(), date.Day(), 17, 0, 0, 0, date.Location())
		return &in, &out
	}
}
