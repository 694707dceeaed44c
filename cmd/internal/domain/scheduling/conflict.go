package scheduling

import (
	"fmt"

	"oficinapro/cmd/internal/domain/entity"
)

// Candidate is a proposed schedule slot before it exists in the store.
type Candidate struct {
	Date            string // "YYYY-MM-DD", compared byte-for-byte
	Time            string // "HH:MM", 24h
	DurationMinutes int
}

// MinuteOfDay converts a strict "HH:MM" 24h clock string to minutes
// since midnight.
func MinuteOfDay(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}

	hours, ok := twoDigits(clock[0], clock[1])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", clock)
	}

	minutes, ok := twoDigits(clock[3], clock[4])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: minute out of range", clock)
	}
	return hours*60 + minutes, nil
}

// HasConflict reports whether the candidate slot overlaps any existing
// non-cancelled schedule on the same date. Intervals are half-open, so a
// schedule ending at 10:00 does not conflict with one starting at 10:00.
//
// The caller supplies `existing` already scoped to a single owner; this
// function never touches storage and never mutates its inputs. A malformed
// time string, whether on the candidate or on a stored row, is returned as
// an error rather than being treated as "no conflict".
func HasConflict(candidate Candidate, existing []*entity.Schedule) (bool, error) {
	if candidate.DurationMinutes <= 0 {
		return false, fmt.Errorf("invalid duration %d: must be positive", candidate.DurationMinutes)
	}

	newStart, err := MinuteOfDay(candidate.Time)
	if err != nil {
		return false, err
	}
	newEnd := newStart + candidate.DurationMinutes

	for _, sched := range existing {
		if sched.Date != candidate.Date || sched.Status == entity.ScheduleStatusCancelled {
			continue
		}

		start, err := MinuteOfDay(sched.Time)
		if err != nil {
			return false, fmt.Errorf("schedule %d: %w", sched.ID, err)
		}
		end := start + sched.DurationMinutes

		// [a,b) overlaps [c,d) iff a < d && c < b.
		if newStart < end && start < newEnd {
			return true, nil
		}
	}
	return false, nil
}

func twoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
