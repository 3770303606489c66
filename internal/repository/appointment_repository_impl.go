package repository

import (
	"errors"
	"time"

	"clinicbook/internal/domain/entity"
	domainRepo "clinicbook/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("DoctorLocation").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Joins("JOIN doctor_locations ON doctor_locations.id = appointments.doctor_location_id").
		Where("doctor_locations.doctor_id = ?", doctorID).
		Preload("DoctorLocation").
		Order("appointments.start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByDoctorLocationAndDate filters on start_time's calendar date instead
// of the stored day_of_week, which is treated as derived.
func (r *appointmentRepository) FindByDoctorLocationAndDate(db *gorm.DB, doctorLocationID int, date time.Time) ([]entity.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []entity.Appointment
	err := db.
		Where("doctor_location_id = ? AND start_time >= ? AND start_time < ?",
			doctorLocationID, dayStart, dayEnd).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindOverlapping applies the half-open overlap test:
// existing.start < new.end AND new.start < existing.end.
func (r *appointmentRepository) FindOverlapping(db *gorm.DB, doctorLocationID int, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("doctor_location_id = ? AND start_time < ? AND end_time > ?",
			doctorLocationID, end, start).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
