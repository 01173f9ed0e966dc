package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
)

func setupMockPool(t *testing.T) (pgxmock.PgxPoolIface, AmenityRepository) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewAmenityRepository(mock)
}

func TestAmenityFetch_NilFilterBindsNull(t *testing.T) {
	mock, repo := setupMockPool(t)

	rows := pgxmock.NewRows([]string{"AmenityID", "Name", "Description", "IsActive"}).
		AddRow(1, "WiFi", "Wireless internet", true).
		AddRow(2, "Pool", "Outdoor pool", false)

	mock.ExpectQuery(fetchAmenitiesSQL).
		WithArgs((*bool)(nil)).
		WillReturnRows(rows)

	result, err := repo.Fetch(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, result.IsSuccess)
	assert.Equal(t, "Amenities Fetched Successfully.", result.Message)
	require.Len(t, result.Amenities, 2)
	assert.Equal(t, "WiFi", result.Amenities[0].Name)
	assert.False(t, result.Amenities[1].IsActive)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityFetch_EmptyResultYieldsEmptySlice(t *testing.T) {
	mock, repo := setupMockPool(t)

	active := true
	mock.ExpectQuery(fetchAmenitiesSQL).
		WithArgs(&active).
		WillReturnRows(pgxmock.NewRows([]string{"AmenityID", "Name", "Description", "IsActive"}))

	result, err := repo.Fetch(context.Background(), &active)

	require.NoError(t, err)
	assert.True(t, result.IsSuccess)
	assert.NotNil(t, result.Amenities)
	assert.Empty(t, result.Amenities)
}

func TestAmenityFetchByID_NotFound(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(fetchAmenityByIDSQL).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"AmenityID", "Name", "Description", "IsActive"}))

	amenity, err := repo.FetchByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, amenity)
}

func TestAmenityAdd_Success(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(addAmenitySQL).
		WithArgs("Spa", "Day spa", "admin@hotel.test").
		WillReturnRows(pgxmock.NewRows([]string{"AmenityID", "Status", "Message"}).
			AddRow(7, 1, "Amenity Created Successfully."))

	result, err := repo.Add(context.Background(), dto.AmenityInsertRequest{Name: "Spa", Description: "Day spa"}, "admin@hotel.test")

	require.NoError(t, err)
	assert.True(t, result.IsCreated)
	assert.Equal(t, 7, result.AmenityID)
	assert.Equal(t, "Amenity Created Successfully.", result.Message)
}

func TestAmenityAdd_ZeroStatusRejected(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(addAmenitySQL).
		WithArgs("Spa", "Day spa", "System").
		WillReturnRows(pgxmock.NewRows([]string{"AmenityID", "Status", "Message"}).
			AddRow(0, 0, "Amenity already exists."))

	result, err := repo.Add(context.Background(), dto.AmenityInsertRequest{Name: "Spa", Description: "Day spa"}, "System")

	require.NoError(t, err)
	assert.False(t, result.IsCreated)
	assert.Equal(t, "Amenity already exists.", result.Message)
}

// Add folds a database fault into a rejected result rather than propagating.
func TestAmenityAdd_FaultFoldedIntoResult(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(addAmenitySQL).
		WithArgs("Spa", "Day spa", "System").
		WillReturnError(assert.AnError)

	result, err := repo.Add(context.Background(), dto.AmenityInsertRequest{Name: "Spa", Description: "Day spa"}, "System")

	require.NoError(t, err)
	assert.False(t, result.IsCreated)
	assert.Contains(t, result.Message, assert.AnError.Error())
}

func TestAmenityDelete_FaultPropagates(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(deleteAmenitySQL).
		WithArgs(3).
		WillReturnError(assert.AnError)

	_, err := repo.Delete(context.Background(), 3)

	assert.Error(t, err)
}

func TestAmenityBulkInsert_SendsSingleJSONArgument(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(bulkInsertAmenitiesSQL).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"Status", "Message"}).
			AddRow(1, "2 Amenities Inserted Successfully."))

	result, err := repo.BulkInsert(context.Background(), []dto.AmenityInsertRequest{
		{Name: "WiFi", Description: "Wireless internet"},
		{Name: "Gym", Description: "Fitness center"},
	}, "System")

	require.NoError(t, err)
	assert.True(t, result.IsSuccess)
	assert.Equal(t, "2 Amenities Inserted Successfully.", result.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityBulkUpdateStatus_ZeroStatusRejected(t *testing.T) {
	mock, repo := setupMockPool(t)

	mock.ExpectQuery(bulkUpdateAmenityStatus).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"Status", "Message"}).
			AddRow(0, "duplicate key value violates unique constraint"))

	result, err := repo.BulkUpdateStatus(context.Background(), []dto.AmenityStatusRequest{{AmenityID: 1, IsActive: false}})

	require.NoError(t, err)
	assert.False(t, result.IsSuccess)
}
