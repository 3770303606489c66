package entity

import "time"

// AvailabilitySlot is a recurring weekly template window for a
// doctor-location pair, e.g. every Wednesday 11:00-12:00. Only the
// clock-time portion of StartTime/EndTime is meaningful; the calendar date
// they carry is whatever date the row was created with. WindowOn projects
// the template onto a concrete date.
type AvailabilitySlot struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorLocationID int       `gorm:"not null;index" json:"doctor_location_id"`
	StartTime        time.Time `gorm:"type:timestamp;not null" json:"start_time"`
	EndTime          time.Time `gorm:"type:timestamp;not null" json:"end_time"`
	DayOfWeek        string    `gorm:"type:varchar(10);not null;index" json:"day_of_week"`

	// Relationships
	DoctorLocation DoctorLocation `gorm:"foreignKey:DoctorLocationID" json:"doctor_location,omitempty"`
}

func (AvailabilitySlot) TableName() string {
	return "availability"
}

// WindowOn returns the concrete window this template defines on the given
// calendar date, combining the date with the template's clock times.
func (s *AvailabilitySlot) WindowOn(date time.Time) TimeWindow {
	return TimeWindow{
		Start: atClockTime(date, s.StartTime),
		End:   atClockTime(date, s.EndTime),
	}
}

func atClockTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
}
