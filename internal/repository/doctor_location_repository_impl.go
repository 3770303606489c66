package repository

import (
	"errors"

	"clinicbook/internal/domain/entity"
	domainRepo "clinicbook/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorLocationRepository struct{}

func NewDoctorLocationRepository() domainRepo.DoctorLocationRepository {
	return &doctorLocationRepository{}
}

func (r *doctorLocationRepository) Create(db *gorm.DB, pair *entity.DoctorLocation) error {
	return db.Create(pair).Error
}

func (r *doctorLocationRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorLocation, error) {
	var pair entity.DoctorLocation
	err := db.Where("id = ?", id).First(&pair).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pair, nil
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE so that concurrent booking
// transactions on the same pair queue behind the row lock. Must run inside a
// transaction.
func (r *doctorLocationRepository) FindByIDForUpdate(db *gorm.DB, id int) (*entity.DoctorLocation, error) {
	var pair entity.DoctorLocation
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&pair).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pair, nil
}

func (r *doctorLocationRepository) FindByDoctorAndLocation(db *gorm.DB, doctorID, locationID int) (*entity.DoctorLocation, error) {
	var pair entity.DoctorLocation
	err := db.Where("doctor_id = ? AND location_id = ?", doctorID, locationID).First(&pair).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pair, nil
}

func (r *doctorLocationRepository) Delete(db *gorm.DB, doctorID, locationID int) (int64, error) {
	result := db.Where("doctor_id = ? AND location_id = ?", doctorID, locationID).
		Delete(&entity.DoctorLocation{})
	return result.RowsAffected, result.Error
}
