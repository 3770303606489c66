package repository

import (
	"time"

	"clinicbook/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error)
	// FindByDoctorLocationAndDate returns appointments whose start time
	// falls on the given calendar date, filtered by start_time rather than
	// the stored day_of_week.
	FindByDoctorLocationAndDate(db *gorm.DB, doctorLocationID int, date time.Time) ([]entity.Appointment, error)
	// FindOverlapping returns appointments intersecting [start, end) on the
	// pair, using the half-open overlap test.
	FindOverlapping(db *gorm.DB, doctorLocationID int, start, end time.Time) ([]entity.Appointment, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
