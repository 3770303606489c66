package usecase

import (
	"context"
	"time"

	"clinicbook/internal/converter"
	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
	"clinicbook/internal/domain/repository"
	"clinicbook/internal/service"
	"clinicbook/pkg/apperrors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	AddAvailability(ctx context.Context, req *dto.AddAvailabilityRequest) (*dto.AvailabilityResponse, error)
	GetAvailability(ctx context.Context, slotID int) (*dto.AvailabilityResponse, error)
	GetDoctorAvailabilities(ctx context.Context, doctorID int) (*dto.AvailabilityListResponse, error)
	DeleteAvailability(ctx context.Context, doctorID, slotID int) error
	FindOpenSlots(ctx context.Context, doctorLocationID int, date time.Time) (*dto.OpenSlotsResponse, error)
}

type availabilityUsecase struct {
	store              repository.Transactor
	log                *logrus.Logger
	doctorLocationRepo repository.DoctorLocationRepository
	slotRepo           repository.AvailabilitySlotRepository
	appointmentRepo    repository.AppointmentRepository
	slotCache          service.SlotCache
}

func NewAvailabilityUsecase(
	store repository.Transactor,
	log *logrus.Logger,
	doctorLocationRepo repository.DoctorLocationRepository,
	slotRepo repository.AvailabilitySlotRepository,
	appointmentRepo repository.AppointmentRepository,
	slotCache service.SlotCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		store:              store,
		log:                log,
		doctorLocationRepo: doctorLocationRepo,
		slotRepo:           slotRepo,
		appointmentRepo:    appointmentRepo,
		slotCache:          slotCache,
	}
}

// AddAvailability registers a recurring weekly template window for a
// (doctor, location) pair. Overlapping templates on the same pair and
// weekday are rejected, matching the admin-facing behavior; the resolver
// still merges defensively for pre-existing data.
func (u *availabilityUsecase) AddAvailability(ctx context.Context, req *dto.AddAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	start, err := time.Parse(converter.TimestampLayout, req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	end, err := time.Parse(converter.TimestampLayout, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	if !end.After(start) {
		return nil, &apperrors.InvalidRangeError{Start: start, End: end}
	}

	db := u.store.DB(ctx)

	pair, err := u.doctorLocationRepo.FindByDoctorAndLocation(db, req.DoctorID, req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find doctor-location pair: %+v", err)
		return nil, err
	}
	if pair == nil {
		return nil, apperrors.NotFound("doctor-location association for doctor", req.DoctorID)
	}

	existing, err := u.slotRepo.FindByDoctorLocationAndDay(db, pair.ID, req.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to load availability for pair %d: %+v", pair.ID, err)
		return nil, err
	}

	// Templates recur weekly, so only clock times matter: project the new
	// window and each stored one onto the same date before comparing.
	slot := &entity.AvailabilitySlot{
		DoctorLocationID: pair.ID,
		StartTime:        start,
		EndTime:          end,
		DayOfWeek:        req.DayOfWeek,
	}
	window := slot.WindowOn(start)
	for _, other := range existing {
		if other.WindowOn(start).Overlaps(window) {
			return nil, apperrors.Conflict("availability template",
				"overlaps an existing window on "+req.DayOfWeek)
		}
	}

	if err := u.slotRepo.Create(db, slot); err != nil {
		u.log.Warnf("Failed to create availability slot: %+v", err)
		return nil, err
	}
	slot.DoctorLocation = *pair

	if u.slotCache != nil {
		u.slotCache.InvalidatePair(ctx, pair.ID)
	}

	u.log.Infof("Availability added: pair=%d, day=%s, window=[%s, %s)",
		pair.ID, req.DayOfWeek, req.StartTime, req.EndTime)
	return converter.AvailabilityToResponse(slot), nil
}

func (u *availabilityUsecase) GetAvailability(ctx context.Context, slotID int) (*dto.AvailabilityResponse, error) {
	slot, err := u.slotRepo.FindByID(u.store.DB(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find availability %d: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, apperrors.NotFound("availability", slotID)
	}
	return converter.AvailabilityToResponse(slot), nil
}

func (u *availabilityUsecase) GetDoctorAvailabilities(ctx context.Context, doctorID int) (*dto.AvailabilityListResponse, error) {
	slots, err := u.slotRepo.FindByDoctorID(u.store.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list availability for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	return &dto.AvailabilityListResponse{
		Availabilities: converter.AvailabilitiesToResponses(slots),
		Total:          len(slots),
	}, nil
}

func (u *availabilityUsecase) DeleteAvailability(ctx context.Context, doctorID, slotID int) error {
	db := u.store.DB(ctx)

	slot, err := u.slotRepo.FindByID(db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find availability %d: %+v", slotID, err)
		return err
	}

	affected, err := u.slotRepo.DeleteByIDAndDoctor(db, slotID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete availability %d: %+v", slotID, err)
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("availability", slotID)
	}

	if u.slotCache != nil && slot != nil {
		u.slotCache.InvalidatePair(ctx, slot.DoctorLocationID)
	}
	return nil
}

// FindOpenSlots resolves the free windows for a pair on a calendar date:
// the weekday's template windows are merged, then the date's booked
// appointments are subtracted. Read-only; results may be served from cache
// and can therefore be momentarily stale, which is safe because booking
// re-checks under its own transaction.
func (u *availabilityUsecase) FindOpenSlots(ctx context.Context, doctorLocationID int, date time.Time) (*dto.OpenSlotsResponse, error) {
	db := u.store.DB(ctx)

	pair, err := u.doctorLocationRepo.FindByID(db, doctorLocationID)
	if err != nil {
		u.log.Warnf("Failed to find doctor location %d: %+v", doctorLocationID, err)
		return nil, err
	}
	if pair == nil {
		return nil, apperrors.NotFound("doctor location", doctorLocationID)
	}

	if u.slotCache != nil {
		if cached, ok := u.slotCache.Get(ctx, doctorLocationID, date); ok {
			return converter.OpenSlotsToResponse(doctorLocationID, date, cached), nil
		}
	}

	open, err := u.resolveOpenSlots(db, doctorLocationID, date)
	if err != nil {
		return nil, err
	}

	if u.slotCache != nil {
		u.slotCache.Set(ctx, doctorLocationID, date, open)
	}
	return converter.OpenSlotsToResponse(doctorLocationID, date, open), nil
}

func (u *availabilityUsecase) resolveOpenSlots(db *gorm.DB, doctorLocationID int, date time.Time) ([]entity.TimeWindow, error) {
	weekday := date.Weekday().String()

	slots, err := u.slotRepo.FindByDoctorLocationAndDay(db, doctorLocationID, weekday)
	if err != nil {
		u.log.Warnf("Failed to load availability for pair %d: %+v", doctorLocationID, err)
		return nil, err
	}

	templates := make([]entity.TimeWindow, 0, len(slots))
	for i := range slots {
		templates = append(templates, slots[i].WindowOn(date))
	}
	// Template rows are not guaranteed disjoint; merge before subtracting so
	// the same physical free time is never reported twice.
	merged := entity.MergeWindows(templates)

	appointments, err := u.appointmentRepo.FindByDoctorLocationAndDate(db, doctorLocationID, date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for pair %d: %+v", doctorLocationID, err)
		return nil, err
	}

	busy := make([]entity.TimeWindow, 0, len(appointments))
	for i := range appointments {
		busy = append(busy, appointments[i].Window())
	}

	return entity.SubtractWindows(merged, busy), nil
}
