package converter

import (
	"time"

	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
)

// TimestampLayout is the ISO-8601 local date-time format used on the wire
// and in the schema (no timezone).
const TimestampLayout = "2006-01-02T15:04:05"

// AvailabilityToResponse converts an AvailabilitySlot entity to its response
// DTO. Doctor and location identifiers come from the preloaded pair.
func AvailabilityToResponse(slot *entity.AvailabilitySlot) *dto.AvailabilityResponse {
	if slot == nil {
		return nil
	}
	return &dto.AvailabilityResponse{
		ID:         slot.ID,
		DoctorID:   slot.DoctorLocation.DoctorID,
		LocationID: slot.DoctorLocation.LocationID,
		StartTime:  slot.StartTime.Format(TimestampLayout),
		EndTime:    slot.EndTime.Format(TimestampLayout),
		DayOfWeek:  slot.DayOfWeek,
	}
}

// AvailabilitiesToResponses converts a slice of AvailabilitySlot entities.
func AvailabilitiesToResponses(slots []entity.AvailabilitySlot) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(slots))
	for i, slot := range slots {
		responses[i] = *AvailabilityToResponse(&slot)
	}
	return responses
}

// OpenSlotsToResponse converts resolved free windows for a pair and date.
func OpenSlotsToResponse(doctorLocationID int, date time.Time, windows []entity.TimeWindow) *dto.OpenSlotsResponse {
	slots := make([]dto.OpenSlotResponse, len(windows))
	for i, w := range windows {
		slots[i] = dto.OpenSlotResponse{
			StartTime: w.Start.Format(TimestampLayout),
			EndTime:   w.End.Format(TimestampLayout),
		}
	}
	return &dto.OpenSlotsResponse{
		DoctorLocationID: doctorLocationID,
		Date:             date.Format("2006-01-02"),
		Slots:            slots,
	}
}
