package handler

import (
	"errors"

	"clinicbook/internal/usecase"
	"clinicbook/pkg/apperrors"
	"clinicbook/pkg/response"

	"net/http"
)

// respondError maps the scheduling error taxonomy onto HTTP statuses:
// NotFoundError 404, InvalidRangeError 400, OutsideAvailabilityError 422,
// SlotConflictError/ConflictError 409, TransactionError and anything
// unrecognized 500. Error messages carry the interval/pair context the
// typed errors already format.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var (
		notFound     *apperrors.NotFoundError
		invalidRange *apperrors.InvalidRangeError
		outside      *apperrors.OutsideAvailabilityError
		slotConflict *apperrors.SlotConflictError
		conflict     *apperrors.ConflictError
		txFailed     *apperrors.TransactionError
	)

	switch {
	case errors.As(err, &notFound):
		response.NotFound(w, notFound.Error())
	case errors.As(err, &invalidRange):
		response.Error(w, http.StatusBadRequest, invalidRange.Error(), nil)
	case errors.As(err, &outside):
		response.UnprocessableEntity(w, outside.Error())
	case errors.As(err, &slotConflict):
		response.Conflict(w, slotConflict.Error())
	case errors.As(err, &conflict):
		response.Conflict(w, conflict.Error())
	case errors.Is(err, usecase.ErrInvalidTimestamp), errors.Is(err, usecase.ErrInvalidDate):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &txFailed):
		response.InternalServerError(w, fallback)
	default:
		response.InternalServerError(w, fallback)
	}
}
