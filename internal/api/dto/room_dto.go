package dto

import (
	"errors"
	"fmt"

	"github.com/spec-kit/hotel-booking-service/internal/domain"
)

// RoomListFilter carries the optional query filters for listing rooms. Absent
// filters are bound as SQL NULL, never as sentinel values.
type RoomListFilter struct {
	RoomTypeID *int
	Status     *string
}

func (f RoomListFilter) Validate() error {
	if f.RoomTypeID != nil && *f.RoomTypeID < 1 {
		return errors.New("Room Type ID must be a positive integer")
	}
	if f.Status != nil && *f.Status != string(domain.RoomStatusAll) && !domain.ValidRoomStatus(*f.Status) {
		return fmt.Errorf("invalid status %q", *f.Status)
	}
	return nil
}

// CreateRoomRequest is the payload for creating a room.
type CreateRoomRequest struct {
	RoomNumber string  `json:"RoomNumber"`
	RoomTypeID int     `json:"RoomTypeID"`
	Price      float64 `json:"Price"`
	BedType    string  `json:"BedType"`
	ViewType   string  `json:"ViewType"`
	Status     string  `json:"Status"`
	IsActive   bool    `json:"IsActive"`
}

func (r CreateRoomRequest) Validate() error {
	if r.RoomNumber == "" {
		return errors.New("RoomNumber is required")
	}
	if r.RoomTypeID < 1 {
		return errors.New("RoomTypeID must be a positive integer")
	}
	if r.Price <= 0 {
		return errors.New("Price must be positive")
	}
	if r.BedType == "" {
		return errors.New("BedType is required")
	}
	if r.ViewType == "" {
		return errors.New("ViewType is required")
	}
	if !domain.ValidRoomStatus(r.Status) {
		return fmt.Errorf("invalid status %q", r.Status)
	}
	return nil
}

// UpdateRoomRequest is the payload for updating a room; RoomID must match the
// path id.
type UpdateRoomRequest struct {
	RoomID     int     `json:"RoomID"`
	RoomNumber string  `json:"RoomNumber"`
	RoomTypeID int     `json:"RoomTypeID"`
	Price      float64 `json:"Price"`
	BedType    string  `json:"BedType"`
	ViewType   string  `json:"ViewType"`
	Status     string  `json:"Status"`
	IsActive   bool    `json:"IsActive"`
}

func (r UpdateRoomRequest) Validate() error {
	if r.RoomID < 1 {
		return errors.New("RoomID must be a positive integer")
	}
	return CreateRoomRequest{
		RoomNumber: r.RoomNumber,
		RoomTypeID: r.RoomTypeID,
		Price:      r.Price,
		BedType:    r.BedType,
		ViewType:   r.ViewType,
		Status:     r.Status,
		IsActive:   r.IsActive,
	}.Validate()
}

// CreateRoomResult reports the outcome of a room creation.
type CreateRoomResult struct {
	RoomID    int    `json:"RoomID"`
	Message   string `json:"Message"`
	IsCreated bool   `json:"IsCreated"`
}

// UpdateRoomResult reports the outcome of a room update.
type UpdateRoomResult struct {
	RoomID    int    `json:"RoomId"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}

// DeleteRoomResult reports the outcome of a room deactivation.
type DeleteRoomResult struct {
	IsDeleted bool   `json:"IsDeleted"`
	Message   string `json:"Message"`
}
