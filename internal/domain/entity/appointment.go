package entity

import "time"

// Appointment is a concrete booked instance on a specific date, scoped to a
// doctor-location pair. DayOfWeek is derived from StartTime; the engine
// recomputes it rather than trusting the stored value.
type Appointment struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorLocationID int       `gorm:"not null;index" json:"doctor_location_id"`
	StartTime        time.Time `gorm:"type:timestamp;not null;index" json:"start_time"`
	EndTime          time.Time `gorm:"type:timestamp;not null" json:"end_time"`
	DayOfWeek        string    `gorm:"type:varchar(10);not null" json:"day_of_week"`

	// Relationships
	DoctorLocation DoctorLocation `gorm:"foreignKey:DoctorLocationID" json:"doctor_location,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Window returns the appointment's booked interval.
func (a *Appointment) Window() TimeWindow {
	return TimeWindow{Start: a.StartTime, End: a.EndTime}
}
