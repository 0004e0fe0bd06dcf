package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInAt(hour, min, sec int) *time.Time {
	t := time.Date(2025, 4, 10, hour, min, sec, 0, time.Local)
	return &t
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"present", StatusPresent, true},
		{"Present", StatusPresent, true},
		{"  LEAVE ", StatusLeave, true},
		{"absent", StatusAbsent, true},
		{"late", StatusLate, true},
		{"sick", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestComputeStatus_LeaveAlwaysWins(t *testing.T) {
	assert.Equal(t, StatusLeave, ComputeStatus(StatusLeave, nil))
	assert.Equal(t, StatusLeave, ComputeStatus(StatusLeave, checkInAt(7, 0, 0)))
	assert.Equal(t, StatusLeave, ComputeStatus(StatusLeave, checkInAt(11, 30, 0)))
}

func TestComputeStatus_NoCheckInIsAbsent(t *testing.T) {
	assert.Equal(t, StatusAbsent, ComputeStatus(StatusPresent, nil))
	assert.Equal(t, StatusAbsent, ComputeStatus(StatusAbsent, nil))
	assert.Equal(t, StatusAbsent, ComputeStatus(StatusLate, nil))
}

func TestComputeStatus_NineOClockBoundary(t *testing.T) {
	tests := []struct {
		name    string
		checkIn *time.Time
		want    Status
	}{
		{"early morning", checkInAt(8, 0, 0), StatusPresent},
		{"exactly 09:00:00", checkInAt(9, 0, 0), StatusPresent},
		{"one second past nine", checkInAt(9, 0, 1), StatusLate},
		{"09:01", checkInAt(9, 1, 0), StatusLate},
		{"mid morning", checkInAt(10, 30, 0), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStatus(StatusPresent, tt.checkIn))
		})
	}
}

func TestComputeStatus_Deterministic(t *testing.T) {
	in := checkInAt(9, 0, 1)
	first := ComputeStatus(StatusPresent, in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeStatus(StatusPresent, in))
	}
}

func TestSynthesizeTimes(t *testing.T) {
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local)

	t.Run("present gets 08:00-17:00", func(t *testing.T) {
		in, out := SynthesizeTimes(date, StatusPresent)
		require.NotNil(t, in)
		require.NotNil(t, out)
		assert.Equal(t, 8, in.Hour())
		assert.Equal(t, 0, in.Minute())
		assert.Equal(t, 17, out.Hour())
	})

	t.Run("late gets 09:15-17:00", func(t *testing.T) {
		in, out := SynthesizeTimes(date, StatusLate)
		require.NotNil(t, in)
		require.NotNil(t, out)
		assert.Equal(t, 9, in.Hour())
		assert.Equal(t, 15, in.Minute())
		assert.Equal(t, 17, out.Hour())
	})

	t.Run("absent and leave get no times", func(t *testing.T) {
		in, out := SynthesizeTimes(date, StatusAbsent)
		assert.Nil(t, in)
		assert.Nil(t, out)

		in, out = SynthesizeTimes(date, StatusLeave)
		assert.Nil(t, in)
		assert.Nil(t, out)
	})

	t.Run("synthesized late check-in derives late", func(t *testing.T) {
		in, _ := SynthesizeTimes(date, StatusLate)
		assert.Equal(t, StatusLate, ComputeStatus(StatusLate, in))
	})
}
