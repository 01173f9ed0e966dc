package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/domain"
)

// RoomTypeRepository defines data access for room types. Delete and
// ToggleActive share the same stored procedure; delete is a fixed
// deactivation.
type RoomTypeRepository interface {
	GetAll(ctx context.Context, isActive *bool) ([]domain.RoomType, error)
	GetByID(ctx context.Context, id int) (*domain.RoomType, error)
	Create(ctx context.Context, in dto.CreateRoomTypeRequest, createdBy string) (dto.CreateRoomTypeResult, error)
	Update(ctx context.Context, in dto.UpdateRoomTypeRequest, modifiedBy string) (dto.UpdateRoomTypeResult, error)
	Delete(ctx context.Context, id int) (dto.DeleteRoomTypeResult, error)
	ToggleActive(ctx context.Context, id int, isActive bool) (bool, string, error)
}

const (
	getAllRoomTypesSQL      = `SELECT * FROM "GetAllRoomTypes"($1)`
	getRoomTypeByIDSQL      = `SELECT * FROM "GetRoomTypeById"($1)`
	createRoomTypeSQL       = `SELECT * FROM "CreateRoomType"($1, $2, $3, $4)`
	updateRoomTypeSQL       = `SELECT * FROM "UpdateRoomType"($1, $2, $3, $4, $5)`
	toggleRoomTypeActiveSQL = `SELECT * FROM "ToggleRoomTypeActive"($1, $2)`
)

type roomTypeRepository struct {
	db Querier
}

// NewRoomTypeRepository returns a Postgres-backed implementation.
func NewRoomTypeRepository(db Querier) RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) GetAll(ctx context.Context, isActive *bool) ([]domain.RoomType, error) {
	rows, err := r.db.Query(ctx, getAllRoomTypesSQL, isActive)
	if err != nil {
		return nil, err
	}
	roomTypes, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.RoomType])
	if err != nil {
		return nil, err
	}
	if roomTypes == nil {
		roomTypes = []domain.RoomType{}
	}
	return roomTypes, nil
}

func (r *roomTypeRepository) GetByID(ctx context.Context, id int) (*domain.RoomType, error) {
	rows, err := r.db.Query(ctx, getRoomTypeByIDSQL, id)
	if err != nil {
		return nil, err
	}
	roomType, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.RoomType])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

// Create folds a database fault into a rejected result instead of
// propagating, matching the store contract for this procedure.
func (r *roomTypeRepository) Create(ctx context.Context, in dto.CreateRoomTypeRequest, createdBy string) (dto.CreateRoomTypeResult, error) {
	var (
		roomTypeID int
		statusCode int
		message    string
	)
	err := r.db.QueryRow(ctx, createRoomTypeSQL, in.TypeName, in.AccessibilityFeatures, in.Description, createdBy).
		Scan(&roomTypeID, &statusCode, &message)
	if err != nil {
		return dto.CreateRoomTypeResult{Message: err.Error()}, nil
	}
	if statusCode != 0 {
		return dto.CreateRoomTypeResult{Message: message}, nil
	}
	return dto.CreateRoomTypeResult{
		RoomTypeID: roomTypeID,
		Message:    message,
		IsCreated:  true,
	}, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, in dto.UpdateRoomTypeRequest, modifiedBy string) (dto.UpdateRoomTypeResult, error) {
	result := dto.UpdateRoomTypeResult{RoomTypeID: in.RoomTypeID}

	var (
		statusCode int
		message    string
	)
	err := r.db.QueryRow(ctx, updateRoomTypeSQL, in.RoomTypeID, in.TypeName, in.AccessibilityFeatures, in.Description, modifiedBy).
		Scan(&statusCode, &message)
	if err != nil {
		result.Message = err.Error()
		return result, nil
	}
	result.Message = message
	result.IsUpdated = statusCode == 0
	return result, nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id int) (dto.DeleteRoomTypeResult, error) {
	var (
		statusCode int
		message    string
	)
	err := r.db.QueryRow(ctx, toggleRoomTypeActiveSQL, id, false).Scan(&statusCode, &message)
	if err != nil {
		return dto.DeleteRoomTypeResult{Message: err.Error()}, nil
	}
	return dto.DeleteRoomTypeResult{
		IsDeleted: statusCode == 0,
		Message:   "Room Type Deleted Successfully",
	}, nil
}

// ToggleActive returns the raw (success, message) pair; the handler builds its
// own minimal response for this endpoint.
func (r *roomTypeRepository) ToggleActive(ctx context.Context, id int, isActive bool) (bool, string, error) {
	var (
		statusCode int
		message    string
	)
	if err := r.db.QueryRow(ctx, toggleRoomTypeActiveSQL, id, isActive).Scan(&statusCode, &message); err != nil {
		return false, "", err
	}
	return statusCode == 0, message, nil
}
