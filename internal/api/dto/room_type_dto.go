package dto

import "errors"

// CreateRoomTypeRequest is the payload for adding a room type.
// AccessibilityFeatures is free text and may be empty.
type CreateRoomTypeRequest struct {
	TypeName              string `json:"TypeName"`
	AccessibilityFeatures string `json:"AccessibilityFeatures"`
	Description           string `json:"Description"`
}

func (r CreateRoomTypeRequest) Validate() error {
	if r.TypeName == "" {
		return errors.New("TypeName is required")
	}
	if r.Description == "" {
		return errors.New("Description is required")
	}
	return nil
}

// UpdateRoomTypeRequest is the payload for updating a room type; RoomTypeID
// must match the path id.
type UpdateRoomTypeRequest struct {
	RoomTypeID            int    `json:"RoomTypeID"`
	TypeName              string `json:"TypeName"`
	AccessibilityFeatures string `json:"AccessibilityFeatures"`
	Description           string `json:"Description"`
}

func (r UpdateRoomTypeRequest) Validate() error {
	if r.RoomTypeID < 1 {
		return errors.New("RoomTypeID must be a positive integer")
	}
	return CreateRoomTypeRequest{
		TypeName:              r.TypeName,
		AccessibilityFeatures: r.AccessibilityFeatures,
		Description:           r.Description,
	}.Validate()
}

// CreateRoomTypeResult reports the outcome of a room type creation.
type CreateRoomTypeResult struct {
	RoomTypeID int    `json:"RoomTypeId"`
	Message    string `json:"Message"`
	IsCreated  bool   `json:"IsCreated"`
}

// UpdateRoomTypeResult reports the outcome of a room type update.
type UpdateRoomTypeResult struct {
	RoomTypeID int    `json:"RoomTypeId"`
	IsUpdated  bool   `json:"IsUpdated"`
	Message    string `json:"Message"`
}

// DeleteRoomTypeResult reports the outcome of a room type deactivation.
type DeleteRoomTypeResult struct {
	IsDeleted bool   `json:"IsDeleted"`
	Message   string `json:"Message"`
}
