package apperrors

import (
	"fmt"
	"time"
)

// timeLayout matches the ISO-8601 local date-time format used across the
// schema (no timezone).
const timeLayout = "2006-01-02T15:04:05"

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource and identifier.
func NotFound(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidRangeError indicates a requested interval with end <= start.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range: start %s must be before end %s",
		e.Start.Format(timeLayout), e.End.Format(timeLayout))
}

// OutsideAvailabilityError indicates a requested interval not covered by the
// union of the weekday's availability template windows.
type OutsideAvailabilityError struct {
	DoctorLocationID int
	Start            time.Time
	End              time.Time
}

func (e *OutsideAvailabilityError) Error() string {
	return fmt.Sprintf("interval [%s, %s) is outside availability for doctor location %d",
		e.Start.Format(timeLayout), e.End.Format(timeLayout), e.DoctorLocationID)
}

// SlotConflictError indicates the requested interval overlaps an existing
// appointment on the same doctor location (half-open overlap test).
type SlotConflictError struct {
	DoctorLocationID int
	Start            time.Time
	End              time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("interval [%s, %s) conflicts with an existing appointment for doctor location %d",
		e.Start.Format(timeLayout), e.End.Format(timeLayout), e.DoctorLocationID)
}

// ConflictError indicates a duplicate entity: an already-registered doctor or
// location, a repeated doctor-location pairing, or an overlapping
// availability template.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e *ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s already exists", e.Resource)
	}
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Detail)
}

// Conflict builds a ConflictError.
func Conflict(resource, detail string) *ConflictError {
	return &ConflictError{Resource: resource, Detail: detail}
}

// TransactionError indicates the underlying store transaction failed or was
// aborted. The wrapped error is preserved for logging; nothing was committed.
type TransactionError struct {
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction failed: %v", e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}
