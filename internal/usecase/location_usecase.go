package usecase

import (
	"context"

	"clinicbook/internal/converter"
	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
	"clinicbook/internal/domain/repository"
	"clinicbook/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

type LocationUsecase interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetLocation(ctx context.Context, locationID int) (*dto.LocationResponse, error)
	GetAllLocations(ctx context.Context) (*dto.LocationListResponse, error)
	AddDoctorLocation(ctx context.Context, req *dto.DoctorLocationRequest) (*dto.DoctorLocationResponse, error)
	RemoveDoctorLocation(ctx context.Context, req *dto.DoctorLocationRequest) error
}

type locationUsecase struct {
	store              repository.Transactor
	log                *logrus.Logger
	locationRepo       repository.LocationRepository
	doctorRepo         repository.DoctorRepository
	doctorLocationRepo repository.DoctorLocationRepository
}

func NewLocationUsecase(
	store repository.Transactor,
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	doctorRepo repository.DoctorRepository,
	doctorLocationRepo repository.DoctorLocationRepository,
) LocationUsecase {
	return &locationUsecase{
		store:              store,
		log:                log,
		locationRepo:       locationRepo,
		doctorRepo:         doctorRepo,
		doctorLocationRepo: doctorLocationRepo,
	}
}

func (u *locationUsecase) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	db := u.store.DB(ctx)

	existing, err := u.locationRepo.FindByAddress(db, req.Address)
	if err != nil {
		u.log.Warnf("Failed to check for existing location: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("location", req.Address)
	}

	location := &entity.Location{Address: req.Address}
	if err := u.locationRepo.Create(db, location); err != nil {
		u.log.Warnf("Failed to create location: %+v", err)
		return nil, err
	}
	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) GetLocation(ctx context.Context, locationID int) (*dto.LocationResponse, error) {
	location, err := u.locationRepo.FindByID(u.store.DB(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find location %d: %+v", locationID, err)
		return nil, err
	}
	if location == nil {
		return nil, apperrors.NotFound("location", locationID)
	}
	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) GetAllLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	locations, err := u.locationRepo.FindAll(u.store.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to list locations: %+v", err)
		return nil, err
	}
	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}

// AddDoctorLocation associates a doctor with a location. The schema has no
// uniqueness constraint on the pair, so the duplicate check is enforced here.
func (u *locationUsecase) AddDoctorLocation(ctx context.Context, req *dto.DoctorLocationRequest) (*dto.DoctorLocationResponse, error) {
	db := u.store.DB(ctx)

	doctor, err := u.doctorRepo.FindByID(db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.NotFound("doctor", req.DoctorID)
	}

	location, err := u.locationRepo.FindByID(db, req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find location %d: %+v", req.LocationID, err)
		return nil, err
	}
	if location == nil {
		return nil, apperrors.NotFound("location", req.LocationID)
	}

	existing, err := u.doctorLocationRepo.FindByDoctorAndLocation(db, req.DoctorID, req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to check doctor-location pair: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("doctor-location association", "")
	}

	pair := &entity.DoctorLocation{
		DoctorID:   req.DoctorID,
		LocationID: req.LocationID,
	}
	if err := u.doctorLocationRepo.Create(db, pair); err != nil {
		u.log.Warnf("Failed to create doctor-location pair: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor %d associated with location %d (pair %d)", req.DoctorID, req.LocationID, pair.ID)
	return &dto.DoctorLocationResponse{
		ID:         pair.ID,
		DoctorID:   pair.DoctorID,
		LocationID: pair.LocationID,
	}, nil
}

func (u *locationUsecase) RemoveDoctorLocation(ctx context.Context, req *dto.DoctorLocationRequest) error {
	affected, err := u.doctorLocationRepo.Delete(u.store.DB(ctx), req.DoctorID, req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to remove doctor-location pair: %+v", err)
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("doctor-location association for doctor", req.DoctorID)
	}
	return nil
}
