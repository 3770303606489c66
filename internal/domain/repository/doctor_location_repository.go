package repository

import (
	"clinicbook/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorLocationRepository interface {
	Create(db *gorm.DB, pair *entity.DoctorLocation) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorLocation, error)
	// FindByIDForUpdate locks the row until the surrounding transaction
	// ends, serializing concurrent bookings on the same pair.
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.DoctorLocation, error)
	FindByDoctorAndLocation(db *gorm.DB, doctorID, locationID int) (*entity.DoctorLocation, error)
	Delete(db *gorm.DB, doctorID, locationID int) (int64, error)
}
