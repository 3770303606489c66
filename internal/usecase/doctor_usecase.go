package usecase

import (
	"context"
	"errors"
	"fmt"

	"clinicbook/internal/converter"
	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
	"clinicbook/internal/domain/repository"
	"clinicbook/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidTimestamp is returned when a date-time field is not in the
	// YYYY-MM-DDTHH:MM:SS format.
	ErrInvalidTimestamp = errors.New("invalid timestamp format, use YYYY-MM-DDTHH:MM:SS")
	// ErrInvalidDate is returned when a date field is not in the
	// YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID int) error
	GetDoctorLocations(ctx context.Context, doctorID int) (*dto.LocationListResponse, error)
}

type doctorUsecase struct {
	store        repository.Transactor
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	locationRepo repository.LocationRepository
}

func NewDoctorUsecase(
	store repository.Transactor,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	locationRepo repository.LocationRepository,
) DoctorUsecase {
	return &doctorUsecase{
		store:        store,
		log:          log,
		doctorRepo:   doctorRepo,
		locationRepo: locationRepo,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.store.DB(ctx)

	existing, err := u.doctorRepo.FindByName(db, req.FirstName, req.LastName)
	if err != nil {
		u.log.Warnf("Failed to check for existing doctor: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("doctor", fmt.Sprintf("%s %s", req.FirstName, req.LastName))
	}

	doctor := &entity.Doctor{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := u.doctorRepo.Create(db, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.store.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.NotFound("doctor", doctorID)
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.store.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.store.DB(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.NotFound("doctor", doctorID)
	}

	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.LastName != "" {
		doctor.LastName = req.LastName
	}

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", doctorID, err)
		return nil, err
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID int) error {
	affected, err := u.doctorRepo.Delete(u.store.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", doctorID, err)
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("doctor", doctorID)
	}
	return nil
}

func (u *doctorUsecase) GetDoctorLocations(ctx context.Context, doctorID int) (*dto.LocationListResponse, error) {
	db := u.store.DB(ctx)

	doctor, err := u.doctorRepo.FindByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.NotFound("doctor", doctorID)
	}

	locations, err := u.locationRepo.FindByDoctorID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list locations for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}
