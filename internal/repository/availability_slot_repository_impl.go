package repository

import (
	"errors"

	"clinicbook/internal/domain/entity"
	domainRepo "clinicbook/internal/domain/repository"

	"gorm.io/gorm"
)

type availabilitySlotRepository struct{}

func NewAvailabilitySlotRepository() domainRepo.AvailabilitySlotRepository {
	return &availabilitySlotRepository{}
}

func (r *availabilitySlotRepository) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.Create(slot).Error
}

func (r *availabilitySlotRepository) FindByID(db *gorm.DB, id int) (*entity.AvailabilitySlot, error) {
	var slot entity.AvailabilitySlot
	err := db.Preload("DoctorLocation").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *availabilitySlotRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.
		Joins("JOIN doctor_locations ON doctor_locations.id = availability.doctor_location_id").
		Where("doctor_locations.doctor_id = ?", doctorID).
		Preload("DoctorLocation").
		Order("availability.day_of_week ASC, availability.start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilitySlotRepository) FindByDoctorLocationAndDay(db *gorm.DB, doctorLocationID int, dayOfWeek string) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.
		Where("doctor_location_id = ? AND day_of_week = ?", doctorLocationID, dayOfWeek).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// DeleteByIDAndDoctor removes a slot only when it belongs to the given
// doctor, mirroring the ownership check on the delete endpoint.
func (r *availabilitySlotRepository) DeleteByIDAndDoctor(db *gorm.DB, id, doctorID int) (int64, error) {
	result := db.
		Where("id = ? AND doctor_location_id IN (?)",
			id,
			db.Session(&gorm.Session{NewDB: true}).
				Model(&entity.DoctorLocation{}).
				Select("id").
				Where("doctor_id = ?", doctorID),
		).
		Delete(&entity.AvailabilitySlot{})
	return result.RowsAffected, result.Error
}
