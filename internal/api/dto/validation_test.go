package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{"valid", CreateUserRequest{Email: "guest@hotel.test", Password: "s3cret"}, false},
		{"missing email", CreateUserRequest{Password: "s3cret"}, true},
		{"malformed email", CreateUserRequest{Email: "not-an-email", Password: "s3cret"}, true},
		{"email with spaces", CreateUserRequest{Email: "a b@hotel.test", Password: "s3cret"}, true},
		{"missing password", CreateUserRequest{Email: "guest@hotel.test"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRoomRequestValidate(t *testing.T) {
	valid := CreateRoomRequest{
		RoomNumber: "101",
		RoomTypeID: 1,
		Price:      120,
		BedType:    "Queen",
		ViewType:   "Sea",
		Status:     "Available",
	}
	assert.NoError(t, valid.Validate())

	noNumber := valid
	noNumber.RoomNumber = ""
	assert.Error(t, noNumber.Validate())

	freePrice := valid
	freePrice.Price = 0
	assert.Error(t, freePrice.Validate())

	badStatus := valid
	badStatus.Status = "Broken"
	assert.Error(t, badStatus.Validate())

	// "All" is a filter value only, never storable.
	allStatus := valid
	allStatus.Status = "All"
	assert.Error(t, allStatus.Validate())
}

func TestRoomListFilterValidate(t *testing.T) {
	assert.NoError(t, RoomListFilter{}.Validate())

	all := "All"
	assert.NoError(t, RoomListFilter{Status: &all}.Validate())

	occupied := "Occupied"
	assert.NoError(t, RoomListFilter{Status: &occupied}.Validate())

	broken := "Broken"
	assert.Error(t, RoomListFilter{Status: &broken}.Validate())

	negative := -1
	assert.Error(t, RoomListFilter{RoomTypeID: &negative}.Validate())
}

func TestUpdateRequestsRequirePositiveIDs(t *testing.T) {
	assert.Error(t, UpdateUserRequest{Email: "guest@hotel.test", Password: "s3cret"}.Validate())
	assert.Error(t, UpdateRoomTypeRequest{TypeName: "Suite", Description: "d"}.Validate())
	assert.Error(t, AmenityUpdateRequest{Name: "Spa", Description: "d"}.Validate())
	assert.Error(t, UserRoleRequest{UserID: 1}.Validate())
	assert.NoError(t, UserRoleRequest{UserID: 1, RoleID: 3}.Validate())
}

func TestCreateRoomTypeRequestValidate(t *testing.T) {
	assert.NoError(t, CreateRoomTypeRequest{TypeName: "Suite", Description: "Top floor suite"}.Validate())
	// AccessibilityFeatures is optional free text.
	assert.NoError(t, CreateRoomTypeRequest{TypeName: "Suite", AccessibilityFeatures: "", Description: "d"}.Validate())
	assert.Error(t, CreateRoomTypeRequest{Description: "d"}.Validate())
	assert.Error(t, CreateRoomTypeRequest{TypeName: "Suite"}.Validate())
}
