package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/domain"
)

// AmenityRepository defines data access for amenities. Every operation maps
// onto one stored procedure call.
type AmenityRepository interface {
	Fetch(ctx context.Context, isActive *bool) (dto.AmenityFetchResult, error)
	FetchByID(ctx context.Context, id int) (*domain.Amenity, error)
	Add(ctx context.Context, in dto.AmenityInsertRequest, createdBy string) (dto.AmenityInsertResult, error)
	Update(ctx context.Context, in dto.AmenityUpdateRequest, modifiedBy string) (dto.AmenityUpdateResult, error)
	Delete(ctx context.Context, id int) (dto.AmenityDeleteResult, error)
	BulkInsert(ctx context.Context, in []dto.AmenityInsertRequest, createdBy string) (dto.AmenityBulkResult, error)
	BulkUpdate(ctx context.Context, in []dto.AmenityUpdateRequest) (dto.AmenityBulkResult, error)
	BulkUpdateStatus(ctx context.Context, in []dto.AmenityStatusRequest) (dto.AmenityBulkResult, error)
}

// Stored procedure calls. Procedure names are the external contract and must
// match the database by name; output parameters arrive as columns of a single
// returned row.
const (
	fetchAmenitiesSQL       = `SELECT * FROM "FetchAmenities"($1)`
	fetchAmenityByIDSQL     = `SELECT * FROM "FetchAmenityByID"($1)`
	addAmenitySQL           = `SELECT * FROM "AddAmenity"($1, $2, $3)`
	updateAmenitySQL        = `SELECT * FROM "UpdateAmenity"($1, $2, $3, $4, $5)`
	deleteAmenitySQL        = `SELECT * FROM "DeleteAmenity"($1)`
	bulkInsertAmenitiesSQL  = `SELECT * FROM "BulkInsertAmenities"($1)`
	bulkUpdateAmenitiesSQL  = `SELECT * FROM "BulkUpdateAmenities"($1)`
	bulkUpdateAmenityStatus = `SELECT * FROM "BulkUpdateAmenityStatus"($1)`
)

type amenityRepository struct {
	db Querier
}

// NewAmenityRepository returns a Postgres-backed implementation.
func NewAmenityRepository(db Querier) AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) Fetch(ctx context.Context, isActive *bool) (dto.AmenityFetchResult, error) {
	rows, err := r.db.Query(ctx, fetchAmenitiesSQL, isActive)
	if err != nil {
		return dto.AmenityFetchResult{}, err
	}
	amenities, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Amenity])
	if err != nil {
		return dto.AmenityFetchResult{}, err
	}
	if amenities == nil {
		amenities = []domain.Amenity{}
	}
	return dto.AmenityFetchResult{
		Amenities: amenities,
		IsSuccess: true,
		Message:   "Amenities Fetched Successfully.",
	}, nil
}

func (r *amenityRepository) FetchByID(ctx context.Context, id int) (*domain.Amenity, error) {
	rows, err := r.db.Query(ctx, fetchAmenityByIDSQL, id)
	if err != nil {
		return nil, err
	}
	amenity, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Amenity])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

// Add folds a database fault into a rejected result instead of propagating,
// matching the store contract for this procedure.
func (r *amenityRepository) Add(ctx context.Context, in dto.AmenityInsertRequest, createdBy string) (dto.AmenityInsertResult, error) {
	var (
		amenityID int
		status    int
		message   string
	)
	err := r.db.QueryRow(ctx, addAmenitySQL, in.Name, in.Description, createdBy).
		Scan(&amenityID, &status, &message)
	if err != nil {
		return dto.AmenityInsertResult{Message: err.Error()}, nil
	}
	if status == 0 {
		return dto.AmenityInsertResult{Message: message}, nil
	}
	return dto.AmenityInsertResult{
		AmenityID: amenityID,
		Message:   message,
		IsCreated: true,
	}, nil
}

func (r *amenityRepository) Update(ctx context.Context, in dto.AmenityUpdateRequest, modifiedBy string) (dto.AmenityUpdateResult, error) {
	result := dto.AmenityUpdateResult{AmenityID: in.AmenityID}

	var (
		status  int
		message string
	)
	err := r.db.QueryRow(ctx, updateAmenitySQL, in.AmenityID, in.Name, in.Description, in.IsActive, modifiedBy).
		Scan(&status, &message)
	if err != nil {
		result.Message = err.Error()
		return result, nil
	}
	result.Message = message
	result.IsUpdated = status != 0
	return result, nil
}

func (r *amenityRepository) Delete(ctx context.Context, id int) (dto.AmenityDeleteResult, error) {
	var (
		status  int
		message string
	)
	if err := r.db.QueryRow(ctx, deleteAmenitySQL, id).Scan(&status, &message); err != nil {
		return dto.AmenityDeleteResult{}, err
	}
	return dto.AmenityDeleteResult{
		IsDeleted: status != 0,
		Message:   message,
	}, nil
}

func (r *amenityRepository) BulkInsert(ctx context.Context, in []dto.AmenityInsertRequest, createdBy string) (dto.AmenityBulkResult, error) {
	type row struct {
		Name        string `json:"Name"`
		Description string `json:"Description"`
		CreatedBy   string `json:"CreatedBy"`
	}
	rows := make([]row, 0, len(in))
	for _, a := range in {
		rows = append(rows, row{Name: a.Name, Description: a.Description, CreatedBy: createdBy})
	}
	return r.bulk(ctx, bulkInsertAmenitiesSQL, rows)
}

func (r *amenityRepository) BulkUpdate(ctx context.Context, in []dto.AmenityUpdateRequest) (dto.AmenityBulkResult, error) {
	return r.bulk(ctx, bulkUpdateAmenitiesSQL, in)
}

func (r *amenityRepository) BulkUpdateStatus(ctx context.Context, in []dto.AmenityStatusRequest) (dto.AmenityBulkResult, error) {
	return r.bulk(ctx, bulkUpdateAmenityStatus, in)
}

// bulk marshals the ordered row set into a single jsonb argument, the
// Postgres stand-in for a table-valued parameter, and reads the aggregate
// outcome. There is no per-row result.
func (r *amenityRepository) bulk(ctx context.Context, sql string, rows any) (dto.AmenityBulkResult, error) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return dto.AmenityBulkResult{}, fmt.Errorf("encode bulk rows: %w", err)
	}

	var (
		status  int
		message string
	)
	if err := r.db.QueryRow(ctx, sql, payload).Scan(&status, &message); err != nil {
		return dto.AmenityBulkResult{}, err
	}
	return dto.AmenityBulkResult{
		IsSuccess: status != 0,
		Message:   message,
	}, nil
}
