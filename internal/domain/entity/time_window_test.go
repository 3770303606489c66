package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// tw builds a window on a fixed date from clock times, e.g. tw("09:00", "10:00").
func tw(start, end string) TimeWindow {
	return TimeWindow{Start: clock(start), End: clock(end)}
}

func clock(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", "2025-01-01T"+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTimeWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeWindow
		want bool
	}{
		{"disjoint", tw("09:00", "10:00"), tw("11:00", "12:00"), false},
		{"touching endpoints do not overlap", tw("09:00", "09:30"), tw("09:30", "10:00"), false},
		{"partial overlap", tw("09:00", "10:00"), tw("09:30", "10:30"), true},
		{"containment", tw("09:00", "12:00"), tw("10:00", "11:00"), true},
		{"identical", tw("09:00", "10:00"), tw("09:00", "10:00"), true},
		{"one minute shared", tw("09:00", "10:00"), tw("09:59", "11:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestMergeWindows(t *testing.T) {
	tests := []struct {
		name    string
		windows []TimeWindow
		want    []TimeWindow
	}{
		{
			name:    "empty input",
			windows: nil,
			want:    nil,
		},
		{
			name:    "single window",
			windows: []TimeWindow{tw("09:00", "10:00")},
			want:    []TimeWindow{tw("09:00", "10:00")},
		},
		{
			name:    "disjoint stay separate",
			windows: []TimeWindow{tw("11:00", "12:00"), tw("09:00", "10:00")},
			want:    []TimeWindow{tw("09:00", "10:00"), tw("11:00", "12:00")},
		},
		{
			name:    "overlapping coalesce",
			windows: []TimeWindow{tw("09:00", "10:30"), tw("10:00", "11:00")},
			want:    []TimeWindow{tw("09:00", "11:00")},
		},
		{
			name:    "touching coalesce",
			windows: []TimeWindow{tw("09:00", "09:30"), tw("09:30", "10:00")},
			want:    []TimeWindow{tw("09:00", "10:00")},
		},
		{
			name:    "contained window absorbed",
			windows: []TimeWindow{tw("09:00", "12:00"), tw("10:00", "11:00")},
			want:    []TimeWindow{tw("09:00", "12:00")},
		},
		{
			name: "mixed unsorted",
			windows: []TimeWindow{
				tw("14:00", "15:00"),
				tw("09:00", "10:00"),
				tw("09:45", "11:00"),
			},
			want: []TimeWindow{tw("09:00", "11:00"), tw("14:00", "15:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeWindows(tt.windows))
		})
	}
}

func TestMergeWindowsDoesNotMutateInput(t *testing.T) {
	windows := []TimeWindow{tw("11:00", "12:00"), tw("09:00", "10:00")}
	MergeWindows(windows)
	assert.Equal(t, tw("11:00", "12:00"), windows[0])
}

func TestSubtractWindows(t *testing.T) {
	tests := []struct {
		name       string
		free, busy []TimeWindow
		want       []TimeWindow
	}{
		{
			name: "booked prefix leaves the tail",
			free: []TimeWindow{tw("09:00", "10:00")},
			busy: []TimeWindow{tw("09:00", "09:30")},
			want: []TimeWindow{tw("09:30", "10:00")},
		},
		{
			name: "no bookings returns the template",
			free: []TimeWindow{tw("09:00", "10:00")},
			busy: nil,
			want: []TimeWindow{tw("09:00", "10:00")},
		},
		{
			name: "fully booked yields nothing",
			free: []TimeWindow{tw("12:00", "12:30")},
			busy: []TimeWindow{tw("12:00", "12:30")},
			want: nil,
		},
		{
			name: "booking in the middle splits the window",
			free: []TimeWindow{tw("09:00", "12:00")},
			busy: []TimeWindow{tw("10:00", "11:00")},
			want: []TimeWindow{tw("09:00", "10:00"), tw("11:00", "12:00")},
		},
		{
			name: "booking spanning the window start",
			free: []TimeWindow{tw("09:00", "10:00")},
			busy: []TimeWindow{tw("08:30", "09:30")},
			want: []TimeWindow{tw("09:30", "10:00")},
		},
		{
			name: "booking spanning the window end",
			free: []TimeWindow{tw("09:00", "10:00")},
			busy: []TimeWindow{tw("09:30", "10:30")},
			want: []TimeWindow{tw("09:00", "09:30")},
		},
		{
			name: "busy outside the window changes nothing",
			free: []TimeWindow{tw("09:00", "10:00")},
			busy: []TimeWindow{tw("11:00", "12:00")},
			want: []TimeWindow{tw("09:00", "10:00")},
		},
		{
			name: "multiple bookings across multiple windows",
			free: []TimeWindow{tw("09:00", "11:00"), tw("13:00", "15:00")},
			busy: []TimeWindow{tw("09:30", "10:00"), tw("13:00", "14:00"), tw("14:30", "16:00")},
			want: []TimeWindow{
				tw("09:00", "09:30"),
				tw("10:00", "11:00"),
				tw("14:00", "14:30"),
			},
		},
		{
			name: "overlapping busy intervals are merged before subtracting",
			free: []TimeWindow{tw("09:00", "12:00")},
			busy: []TimeWindow{tw("09:30", "10:30"), tw("10:00", "11:00")},
			want: []TimeWindow{tw("09:00", "09:30"), tw("11:00", "12:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubtractWindows(tt.free, tt.busy))
		})
	}
}

func TestTimeWindowCoveredBy(t *testing.T) {
	merged := MergeWindows([]TimeWindow{
		tw("09:00", "09:30"),
		tw("09:30", "10:00"),
		tw("14:00", "15:00"),
	})

	tests := []struct {
		name string
		w    TimeWindow
		want bool
	}{
		{"exact match of a merged window", tw("09:00", "10:00"), true},
		{"inside a merged window", tw("09:15", "09:45"), true},
		{"spans two touching templates", tw("09:20", "09:40"), true},
		{"starts before coverage", tw("08:30", "09:30"), false},
		{"ends after coverage", tw("09:30", "10:30"), false},
		{"gap between windows", tw("11:00", "12:00"), false},
		{"spans the gap", tw("09:30", "14:30"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.CoveredBy(merged))
		})
	}
}

func TestTimeWindowIsValid(t *testing.T) {
	assert.True(t, tw("09:00", "09:01").IsValid())
	assert.False(t, tw("09:00", "09:00").IsValid())
	assert.False(t, tw("10:00", "09:00").IsValid())
}

func TestAvailabilitySlotWindowOn(t *testing.T) {
	// Template created on one date, projected onto another: only the clock
	// times carry over.
	slot := &AvailabilitySlot{
		StartTime: clock("09:00"),
		EndTime:   clock("10:00"),
		DayOfWeek: "Wednesday",
	}

	date := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	window := slot.WindowOn(date)

	assert.Equal(t, time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC), window.End)
}

func TestAppointmentWindow(t *testing.T) {
	appointment := &Appointment{StartTime: clock("09:00"), EndTime: clock("09:30")}
	assert.Equal(t, tw("09:00", "09:30"), appointment.Window())
}
