package repository

import (
	"clinicbook/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByName(db *gorm.DB, firstName, lastName string) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int) (int64, error)
}
