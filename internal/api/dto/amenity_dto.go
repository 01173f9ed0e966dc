package dto

import (
	"errors"

	"github.com/spec-kit/hotel-booking-service/internal/domain"
)

// AmenityInsertRequest is the payload for adding a single amenity. It also
// serves as the row shape for bulk inserts.
type AmenityInsertRequest struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

func (r AmenityInsertRequest) Validate() error {
	if r.Name == "" {
		return errors.New("Name is required")
	}
	if r.Description == "" {
		return errors.New("Description is required")
	}
	return nil
}

// AmenityUpdateRequest is the payload for updating one amenity, and the row
// shape for bulk updates.
type AmenityUpdateRequest struct {
	AmenityID   int    `json:"AmenityID"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	IsActive    bool   `json:"IsActive"`
}

func (r AmenityUpdateRequest) Validate() error {
	if r.AmenityID <= 0 {
		return errors.New("AmenityID is required")
	}
	if r.Name == "" {
		return errors.New("Name is required")
	}
	if r.Description == "" {
		return errors.New("Description is required")
	}
	return nil
}

// AmenityStatusRequest is one row of a bulk active-flag update.
type AmenityStatusRequest struct {
	AmenityID int  `json:"AmenityID"`
	IsActive  bool `json:"IsActive"`
}

func (r AmenityStatusRequest) Validate() error {
	if r.AmenityID <= 0 {
		return errors.New("AmenityID is required")
	}
	return nil
}

// AmenityFetchResult is the list payload returned by the fetch endpoint.
type AmenityFetchResult struct {
	Amenities []domain.Amenity `json:"Amenities"`
	IsSuccess bool             `json:"IsSuccess"`
	Message   string           `json:"Message"`
}

// AmenityInsertResult reports the outcome of a single insert.
type AmenityInsertResult struct {
	AmenityID int    `json:"AmenityID"`
	Message   string `json:"Message"`
	IsCreated bool   `json:"IsCreated"`
}

// AmenityUpdateResult reports the outcome of a single update.
type AmenityUpdateResult struct {
	AmenityID int    `json:"AmenityID"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}

// AmenityDeleteResult reports the outcome of a row delete.
type AmenityDeleteResult struct {
	IsDeleted bool   `json:"IsDeleted"`
	Message   string `json:"Message"`
}

// AmenityBulkResult is the single aggregate outcome of a bulk operation; the
// store reports no per-row results.
type AmenityBulkResult struct {
	IsSuccess bool   `json:"IsSuccess"`
	Message   string `json:"Message"`
}
