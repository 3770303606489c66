package apperrors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "appointment 42 not found", NotFound("appointment", 42).Error())
	assert.Equal(t, "doctor already exists", Conflict("doctor", "").Error())
	assert.Equal(t, "doctor already exists: Jane Wright", Conflict("doctor", "Jane Wright").Error())

	invalid := &InvalidRangeError{Start: end, End: start}
	assert.Contains(t, invalid.Error(), "2025-01-01T09:30:00")

	outside := &OutsideAvailabilityError{DoctorLocationID: 1, Start: start, End: end}
	assert.Contains(t, outside.Error(), "outside availability for doctor location 1")

	conflict := &SlotConflictError{DoctorLocationID: 1, Start: start, End: end}
	assert.Contains(t, conflict.Error(), "conflicts with an existing appointment")
}

func TestTransactionErrorUnwrap(t *testing.T) {
	cause := errors.New("deadlock detected")
	err := &TransactionError{Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "deadlock detected")

	// Wrapping survives another layer.
	wrapped := fmt.Errorf("booking failed: %w", err)
	var txErr *TransactionError
	assert.ErrorAs(t, wrapped, &txErr)
}
