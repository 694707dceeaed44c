package scheduling

import (
	"testing"

	"oficinapro/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingAt(date, clock string, duration int, status string) *entity.Schedule {
	return &entity.Schedule{
		ID:              1,
		UserID:          7,
		Date:            date,
		Time:            clock,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:30", 0, true},
		{"09-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := MinuteOfDay(tc.clock)
		if tc.wantErr {
			assert.Error(t, err, "clock %q", tc.clock)
			continue
		}
		require.NoError(t, err, "clock %q", tc.clock)
		assert.Equal(t, tc.want, got, "clock %q", tc.clock)
	}
}

func TestHasConflict_Overlapping(t *testing.T) {
	existing := []*entity.Schedule{
		existingAt("2025-03-10", "09:00", 60, entity.ScheduleStatusConfirmed),
	}

	conflict, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:30", DurationMinutes: 30}, existing)
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasConflict_BoundaryTouchIsFree(t *testing.T) {
	existing := []*entity.Schedule{
		existingAt("2025-03-10", "09:00", 60, entity.ScheduleStatusConfirmed),
	}

	// Existing runs 09:00-10:00; starting exactly at 10:00 is fine.
	conflict, err := HasConflict(Candidate{Date: "2025-03-10", Time: "10:00", DurationMinutes: 30}, existing)
	require.NoError(t, err)
	assert.False(t, conflict)

	// Ending exactly at 09:00 is fine too.
	conflict, err = HasConflict(Candidate{Date: "2025-03-10", Time: "08:30", DurationMinutes: 30}, existing)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_Symmetric(t *testing.T) {
	a := Candidate{Date: "2025-03-10", Time: "09:00", DurationMinutes: 90}
	b := Candidate{Date: "2025-03-10", Time: "10:00", DurationMinutes: 45}

	ab, err := HasConflict(a, []*entity.Schedule{
		existingAt(b.Date, b.Time, b.DurationMinutes, entity.ScheduleStatusPending),
	})
	require.NoError(t, err)

	ba, err := HasConflict(b, []*entity.Schedule{
		existingAt(a.Date, a.Time, a.DurationMinutes, entity.ScheduleStatusPending),
	})
	require.NoError(t, err)

	assert.True(t, ab)
	assert.Equal(t, ab, ba)
}

func TestHasConflict_IgnoresCancelled(t *testing.T) {
	existing := []*entity.Schedule{
		existingAt("2025-03-10", "09:00", 60, entity.ScheduleStatusCancelled),
	}

	// Exact same slot as the cancelled schedule.
	conflict, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:00", DurationMinutes: 60}, existing)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_IgnoresOtherDates(t *testing.T) {
	existing := []*entity.Schedule{
		existingAt("2025-03-11", "09:00", 60, entity.ScheduleStatusConfirmed),
	}

	conflict, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:00", DurationMinutes: 60}, existing)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_EmptyExisting(t *testing.T) {
	conflict, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:00", DurationMinutes: 60}, nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_ContainedAndContaining(t *testing.T) {
	existing := []*entity.Schedule{
		existingAt("2025-03-10", "09:00", 60, entity.ScheduleStatusConfirmed),
	}

	// Candidate fully inside the existing slot.
	conflict, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:15", DurationMinutes: 15}, existing)
	require.NoError(t, err)
	assert.True(t, conflict)

	// Candidate fully containing the existing slot.
	conflict, err = HasConflict(Candidate{Date: "2025-03-10", Time: "08:00", DurationMinutes: 180}, existing)
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasConflict_Idempotent(t *testing.T) {
	candidate := Candidate{Date: "2025-03-10", Time: "09:30", DurationMinutes: 30}
	existing := []*entity.Schedule{
		existingAt("2025-03-10", "09:00", 60, entity.ScheduleStatusConfirmed),
	}

	first, err := HasConflict(candidate, existing)
	require.NoError(t, err)
	second, err := HasConflict(candidate, existing)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHasConflict_MalformedCandidateTime(t *testing.T) {
	_, err := HasConflict(Candidate{Date: "2025-03-10", Time: "9h30", DurationMinutes: 30}, nil)
	assert.Error(t, err)
}

func TestHasConflict_MalformedStoredTimePropagates(t *testing.T) {
	existing := []*entity.Schedule{
		existingAt("2025-03-10", "junk!", 60, entity.ScheduleStatusConfirmed),
	}

	_, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:00", DurationMinutes: 30}, existing)
	assert.Error(t, err)
}

func TestHasConflict_NonPositiveDuration(t *testing.T) {
	_, err := HasConflict(Candidate{Date: "2025-03-10", Time: "09:00", DurationMinutes: 0}, nil)
	assert.Error(t, err)
}
