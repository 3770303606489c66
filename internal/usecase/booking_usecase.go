package usecase

import (
	"context"
	"errors"
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

type BookingUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, appointmentID int) error
}

type bookingUsecase struct {
	store              repository.Transactor
	log                *logrus.Logger
	doctorLocationRepo repository.DoctorLocationRepository
	slotRepo           repository.AvailabilitySlotRepository
	appointmentRepo    repository.AppointmentRepository
	slotCache          service.SlotCache
}

func NewBookingUsecase(
	store repository.Transactor,
	log *logrus.Logger,
	doctorLocationRepo repository.DoctorLocationRepository,
	slotRepo repository.AvailabilitySlotRepository,
	appointmentRepo repository.AppointmentRepository,
	slotCache service.SlotCache,
) BookingUsecase {
	return &bookingUsecase{
		store:              store,
		log:                log,
		doctorLocationRepo: doctorLocationRepo,
		slotRepo:           slotRepo,
		appointmentRepo:    appointmentRepo,
		slotCache:          slotCache,
	}
}

// BookAppointment validates and commits a booking inside one transaction.
//
// Protocol:
//  1. Lock the doctor_locations row (SELECT ... FOR UPDATE) so concurrent
//     bookings on the same pair serialize.
//  2. Recompute the weekday from start_time and require [start, end) to lie
//     within the merged union of that weekday's template windows.
//  3. Reject any half-open overlap with an existing appointment.
//  4. Insert and commit.
//
// Any failure aborts the transaction; nothing is partially written.
func (u *bookingUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
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

	requested := entity.TimeWindow{Start: start, End: end}
	var appointment *entity.Appointment

	txErr := u.store.WithTransaction(ctx, func(tx *gorm.DB) error {
		pair, err := u.doctorLocationRepo.FindByIDForUpdate(tx, req.DoctorLocationID)
		if err != nil {
			return err
		}
		if pair == nil {
			return apperrors.NotFound("doctor location", req.DoctorLocationID)
		}

		// day_of_week is derived from start_time, never taken from input.
		weekday := start.Weekday().String()

		slots, err := u.slotRepo.FindByDoctorLocationAndDay(tx, pair.ID, weekday)
		if err != nil {
			return err
		}
		templates := make([]entity.TimeWindow, 0, len(slots))
		for i := range slots {
			templates = append(templates, slots[i].WindowOn(start))
		}
		if !requested.CoveredBy(entity.MergeWindows(templates)) {
			return &apperrors.OutsideAvailabilityError{
				DoctorLocationID: pair.ID,
				Start:            start,
				End:              end,
			}
		}

		overlapping, err := u.appointmentRepo.FindOverlapping(tx, pair.ID, start, end)
		if err != nil {
			return err
		}
		if len(overlapping) > 0 {
			return &apperrors.SlotConflictError{
				DoctorLocationID: pair.ID,
				Start:            start,
				End:              end,
			}
		}

		appointment = &entity.Appointment{
			DoctorLocationID: pair.ID,
			StartTime:        start,
			EndTime:          end,
			DayOfWeek:        weekday,
		}
		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			return err
		}
		appointment.DoctorLocation = *pair
		return nil
	})
	if txErr != nil {
		if isDomainError(txErr) {
			return nil, txErr
		}
		u.log.Errorf("Booking transaction aborted for pair %d: %+v", req.DoctorLocationID, txErr)
		return nil, &apperrors.TransactionError{Err: txErr}
	}

	if u.slotCache != nil {
		u.slotCache.Invalidate(ctx, appointment.DoctorLocationID, start)
	}

	u.log.Infof("Appointment booked: id=%d, pair=%d, window=[%s, %s)",
		appointment.ID, appointment.DoctorLocationID, req.StartTime, req.EndTime)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.store.DB(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperrors.NotFound("appointment", appointmentID)
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) GetDoctorAppointments(ctx context.Context, doctorID int) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.store.DB(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// CancelAppointment deletes a booked appointment, freeing its interval.
func (u *bookingUsecase) CancelAppointment(ctx context.Context, appointmentID int) error {
	db := u.store.DB(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return apperrors.NotFound("appointment", appointmentID)
	}

	affected, err := u.appointmentRepo.Delete(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("appointment", appointmentID)
	}

	if u.slotCache != nil {
		u.slotCache.Invalidate(ctx, appointment.DoctorLocationID, appointment.StartTime)
	}

	u.log.Infof("Appointment cancelled: id=%d, pair=%d", appointmentID, appointment.DoctorLocationID)
	return nil
}

// isDomainError reports whether err is one of the typed scheduling errors
// that should pass through to the caller unwrapped.
func isDomainError(err error) bool {
	var (
		notFound     *apperrors.NotFoundError
		invalidRange *apperrors.InvalidRangeError
		outside      *apperrors.OutsideAvailabilityError
		conflict     *apperrors.SlotConflictError
		duplicate    *apperrors.ConflictError
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &invalidRange) ||
		errors.As(err, &outside) ||
		errors.As(err, &conflict) ||
		errors.As(err, &duplicate)
}
