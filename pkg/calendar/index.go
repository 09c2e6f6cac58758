// Package calendar buckets date-stamped work assignments by local-calendar
// day for month/week grid rendering.
package calendar

import (
	"time"

	"github.com/google/uuid"
)

// DayKeyLayout is the ISO day key format used to bucket assignments.
const DayKeyLayout = "2006-01-02"

// DayKey derives the bucket key for t in its own location. Two records on
// the same wall-clock day group together regardless of time of day.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// Job is the scheduled work an assignment points at. A job spanning several
// days surfaces on every day of its inclusive interval.
type Job struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Color     string    `json:"color"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
}

// Assignment links a technician to a job. Date is optional and only set by
// sources that have already flattened assignments to one row per day.
type Assignment struct {
	TechnicianID uuid.UUID `json:"technicianId"`
	JobID        uuid.UUID `json:"jobId"`
	Date         string    `json:"date,omitempty"`
	Job          Job       `json:"job"`
}

// IndexByDate groups assignments under every day key of days that falls
// inside the assignment's job interval. Assignments with an unusable
// interval (zero start, or end before start) are dropped, never a panic. The
// function is pure and safe to memoize by input reference.
func IndexByDate(assignments []Assignment, days []time.Time) map[string][]Assignment {
	index := make(map[string][]Assignment, len(days))
	for _, day := range days {
		key := DayKey(day)
		if _, ok := index[key]; !ok {
			index[key] = []Assignment{}
		}
	}
	for _, a := range assignments {
		for _, key := range jobDayKeys(a.Job) {
			if bucket, ok := index[key]; ok {
				index[key] = append(bucket, a)
			}
		}
	}
	return index
}

// jobDayKeys expands a job's inclusive interval into day keys in the job's
// own calendar. Day keys compare as strings, so grid days supplied in a
// different location still match on the wall-clock day.
func jobDayKeys(j Job) []string {
	start, end, ok := jobInterval(j)
	if !ok {
		return nil
	}
	keys := make([]string, 0, 1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		keys = append(keys, DayKey(day))
	}
	return keys
}

// FilterAssignmentsByDate matches rows whose precomputed Date field equals
// the given day key. Used by timesheet-backed sources that already carry one
// row per day.
func FilterAssignmentsByDate(assignments []Assignment, date string) []Assignment {
	matched := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Date == date {
			matched = append(matched, a)
		}
	}
	return matched
}

// jobInterval normalizes a job's start/end to day precision. A zero end time
// means a single-day job; an end before the start is malformed and dropped.
func jobInterval(j Job) (start, end time.Time, ok bool) {
	if j.StartTime.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	start = truncateToDay(j.StartTime)
	end = start
	if !j.EndTime.IsZero() {
		end = truncateToDay(j.EndTime)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
