package repository

import (
	"clinicbook/internal/domain/entity"

	"gorm.io/gorm"
)

type AvailabilitySlotRepository interface {
	Create(db *gorm.DB, slot *entity.AvailabilitySlot) error
	FindByID(db *gorm.DB, id int) (*entity.AvailabilitySlot, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.AvailabilitySlot, error)
	FindByDoctorLocationAndDay(db *gorm.DB, doctorLocationID int, dayOfWeek string) ([]entity.AvailabilitySlot, error)
	DeleteByIDAndDoctor(db *gorm.DB, id, doctorID int) (int64, error)
}
