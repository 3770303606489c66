package usecase

import (
	"context"
	"io"
	"testing"

	"clinicbook/internal/delivery/dto"
	"clinicbook/internal/domain/entity"
	"clinicbook/pkg/apperrors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locationFixture struct {
	usecase   LocationUsecase
	doctors   *mockDoctorRepo
	locations *mockLocationRepo
	pairs     *mockDoctorLocationRepo
}

func setupLocation(t *testing.T) *locationFixture {
	t.Helper()

	pairs := newMockDoctorLocationRepo()
	doctors := newMockDoctorRepo()
	locations := newMockLocationRepo(pairs)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &locationFixture{
		usecase:   NewLocationUsecase(&mockStore{}, log, locations, doctors, pairs),
		doctors:   doctors,
		locations: locations,
		pairs:     pairs,
	}
}

func TestCreateLocation(t *testing.T) {
	f := setupLocation(t)

	resp, err := f.usecase.CreateLocation(context.Background(),
		&dto.CreateLocationRequest{Address: "1 Park St"})
	require.NoError(t, err)
	assert.Equal(t, "1 Park St", resp.Address)
	assert.NotZero(t, resp.ID)
}

func TestCreateLocationDuplicateAddress(t *testing.T) {
	f := setupLocation(t)

	_, err := f.usecase.CreateLocation(context.Background(),
		&dto.CreateLocationRequest{Address: "1 Park St"})
	require.NoError(t, err)

	var conflict *apperrors.ConflictError
	_, err = f.usecase.CreateLocation(context.Background(),
		&dto.CreateLocationRequest{Address: "1 Park St"})
	assert.ErrorAs(t, err, &conflict)
}

func TestGetLocationNotFound(t *testing.T) {
	f := setupLocation(t)

	var notFound *apperrors.NotFoundError
	_, err := f.usecase.GetLocation(context.Background(), 42)
	assert.ErrorAs(t, err, &notFound)
}

func TestAddDoctorLocation(t *testing.T) {
	f := setupLocation(t)
	require.NoError(t, f.doctors.Create(nil, &entity.Doctor{FirstName: "Jane", LastName: "Wright"}))
	require.NoError(t, f.locations.Create(nil, &entity.Location{Address: "1 Park St"}))

	resp, err := f.usecase.AddDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 1, LocationID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.DoctorID)
	assert.Equal(t, 1, resp.LocationID)
	assert.NotZero(t, resp.ID)
}

func TestAddDoctorLocationMissingEndpoints(t *testing.T) {
	f := setupLocation(t)
	require.NoError(t, f.doctors.Create(nil, &entity.Doctor{FirstName: "Jane", LastName: "Wright"}))

	var notFound *apperrors.NotFoundError

	// Unknown doctor.
	_, err := f.usecase.AddDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 9, LocationID: 1})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "doctor", notFound.Resource)

	// Unknown location.
	_, err = f.usecase.AddDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 1, LocationID: 9})
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "location", notFound.Resource)
}

func TestAddDoctorLocationDuplicatePair(t *testing.T) {
	f := setupLocation(t)
	require.NoError(t, f.doctors.Create(nil, &entity.Doctor{FirstName: "Jane", LastName: "Wright"}))
	require.NoError(t, f.locations.Create(nil, &entity.Location{Address: "1 Park St"}))

	_, err := f.usecase.AddDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 1, LocationID: 1})
	require.NoError(t, err)

	var conflict *apperrors.ConflictError
	_, err = f.usecase.AddDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 1, LocationID: 1})
	assert.ErrorAs(t, err, &conflict)
}

func TestRemoveDoctorLocation(t *testing.T) {
	f := setupLocation(t)
	f.pairs.add(1, 1)

	require.NoError(t, f.usecase.RemoveDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 1, LocationID: 1}))

	var notFound *apperrors.NotFoundError
	err := f.usecase.RemoveDoctorLocation(context.Background(),
		&dto.DoctorLocationRequest{DoctorID: 1, LocationID: 1})
	assert.ErrorAs(t, err, &notFound)
}
