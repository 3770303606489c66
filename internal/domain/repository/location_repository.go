package repository

import (
	"clinicbook/internal/domain/entity"

	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(db *gorm.DB, location *entity.Location) error
	FindByID(db *gorm.DB, id int) (*entity.Location, error)
	FindByAddress(db *gorm.DB, address string) (*entity.Location, error)
	FindAll(db *gorm.DB) ([]entity.Location, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Location, error)
}
