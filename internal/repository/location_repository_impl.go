package repository

import (
	"errors"

	"clinicbook/internal/domain/entity"
	domainRepo "clinicbook/internal/domain/repository"

	"gorm.io/gorm"
)

type locationRepository struct{}

func NewLocationRepository() domainRepo.LocationRepository {
	return &locationRepository{}
}

func (r *locationRepository) Create(db *gorm.DB, location *entity.Location) error {
	return db.Create(location).Error
}

func (r *locationRepository) FindByID(db *gorm.DB, id int) (*entity.Location, error) {
	var location entity.Location
	err := db.Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) FindByAddress(db *gorm.DB, address string) (*entity.Location, error) {
	var location entity.Location
	err := db.Where("address = ?", address).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) FindAll(db *gorm.DB) ([]entity.Location, error) {
	var locations []entity.Location
	err := db.Order("id ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Location, error) {
	var locations []entity.Location
	err := db.
		Joins("JOIN doctor_locations ON doctor_locations.location_id = locations.id").
		Where("doctor_locations.doctor_id = ?", doctorID).
		Order("locations.id ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
