package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/domain"
)

// RoomRepository defines data access for rooms. Deleting a room deactivates
// it; the row stays.
type RoomRepository interface {
	GetAll(ctx context.Context, filter dto.RoomListFilter) ([]domain.Room, error)
	GetByID(ctx context.Context, id int) (*domain.Room, error)
	Create(ctx context.Context, in dto.CreateRoomRequest, createdBy string) (dto.CreateRoomResult, error)
	Update(ctx context.Context, in dto.UpdateRoomRequest, modifiedBy string) (dto.UpdateRoomResult, error)
	Delete(ctx context.Context, id int) (dto.DeleteRoomResult, error)
}

const (
	getAllRoomsSQL = `SELECT * FROM "GetAllRooms"($1, $2)`
	getRoomByIDSQL = `SELECT * FROM "GetRoomById"($1)`
	createRoomSQL  = `SELECT * FROM "CreateRoom"($1, $2, $3, $4, $5, $6, $7, $8)`
	updateRoomSQL  = `SELECT * FROM "UpdateRoom"($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	deleteRoomSQL  = `SELECT * FROM "DeleteRoom"($1)`
)

type roomRepository struct {
	db Querier
}

// NewRoomRepository returns a Postgres-backed implementation.
func NewRoomRepository(db Querier) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) GetAll(ctx context.Context, filter dto.RoomListFilter) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, getAllRoomsSQL, filter.RoomTypeID, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("get all rooms: %w", err)
	}
	rooms, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Room])
	if err != nil {
		return nil, fmt.Errorf("get all rooms: %w", err)
	}
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return rooms, nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int) (*domain.Room, error) {
	rows, err := r.db.Query(ctx, getRoomByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	room, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Room])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, in dto.CreateRoomRequest, createdBy string) (dto.CreateRoomResult, error) {
	var (
		roomID     int
		statusCode int
		message    string
	)
	err := r.db.QueryRow(ctx, createRoomSQL,
		in.RoomNumber, in.RoomTypeID, in.Price, in.BedType, in.ViewType, in.Status, in.IsActive, createdBy).
		Scan(&roomID, &statusCode, &message)
	if err != nil {
		return dto.CreateRoomResult{}, fmt.Errorf("create room: %w", err)
	}
	return dto.CreateRoomResult{
		RoomID:    roomID,
		Message:   message,
		IsCreated: statusCode == 0,
	}, nil
}

func (r *roomRepository) Update(ctx context.Context, in dto.UpdateRoomRequest, modifiedBy string) (dto.UpdateRoomResult, error) {
	var (
		statusCode int
		message    string
	)
	err := r.db.QueryRow(ctx, updateRoomSQL,
		in.RoomID, in.RoomNumber, in.RoomTypeID, in.Price, in.BedType, in.ViewType, in.Status, in.IsActive, modifiedBy).
		Scan(&statusCode, &message)
	if err != nil {
		return dto.UpdateRoomResult{}, fmt.Errorf("update room: %w", err)
	}
	return dto.UpdateRoomResult{
		RoomID:    in.RoomID,
		IsUpdated: statusCode == 0,
		Message:   message,
	}, nil
}

func (r *roomRepository) Delete(ctx context.Context, id int) (dto.DeleteRoomResult, error) {
	var (
		statusCode int
		message    string
	)
	if err := r.db.QueryRow(ctx, deleteRoomSQL, id).Scan(&statusCode, &message); err != nil {
		return dto.DeleteRoomResult{}, fmt.Errorf("delete room: %w", err)
	}
	return dto.DeleteRoomResult{
		IsDeleted: statusCode == 0,
		Message:   message,
	}, nil
}
