package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
	"github.com/spec-kit/hotel-booking-service/internal/domain"
)

// UserRepository defines data access for user accounts. The user procedures
// signal rejection through an error-message output, not a status code: an
// empty message means the operation succeeded, except for AddUser and
// LoginUser where success is a positive returned user id.
type UserRepository interface {
	Add(ctx context.Context, in dto.CreateUserRequest, createdBy string) (dto.CreateUserResult, error)
	AssignRole(ctx context.Context, in dto.UserRoleRequest) (dto.UserRoleResult, error)
	ListAll(ctx context.Context, isActive *bool) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	Update(ctx context.Context, in dto.UpdateUserRequest, modifiedBy string) (dto.UpdateUserResult, error)
	Delete(ctx context.Context, id int) (dto.DeleteUserResult, error)
	Login(ctx context.Context, in dto.LoginUserRequest) (dto.LoginUserResult, error)
	ToggleActive(ctx context.Context, id int, isActive bool) (bool, string, error)
}

const (
	addUserSQL          = `SELECT * FROM "AddUser"($1, $2, $3)`
	assignUserRoleSQL   = `SELECT * FROM "AssignUserRole"($1, $2)`
	listAllUsersSQL     = `SELECT * FROM "ListAllUsers"($1)`
	getUserByIDSQL      = `SELECT * FROM "GetUserById"($1)`
	updateUserSQL       = `SELECT * FROM "UpdateUserInformation"($1, $2, $3, $4)`
	toggleUserActiveSQL = `SELECT * FROM "ToggleUserActive"($1, $2)`
	loginUserSQL        = `SELECT * FROM "LoginUser"($1, $2)`
)

type userRepository struct {
	db Querier
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db Querier) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Add(ctx context.Context, in dto.CreateUserRequest, createdBy string) (dto.CreateUserResult, error) {
	var (
		userID   int
		errorMsg *string
	)
	err := r.db.QueryRow(ctx, addUserSQL, in.Email, in.Password, createdBy).Scan(&userID, &errorMsg)
	if err != nil {
		return dto.CreateUserResult{}, err
	}

	if userID != -1 {
		return dto.CreateUserResult{
			UserID:    userID,
			IsCreated: true,
			Message:   "User Created Successfully",
		}, nil
	}

	message := "a problem occurred while creating the user"
	if errorMsg != nil && *errorMsg != "" {
		message = *errorMsg
	}
	return dto.CreateUserResult{Message: message}, nil
}

func (r *userRepository) AssignRole(ctx context.Context, in dto.UserRoleRequest) (dto.UserRoleResult, error) {
	var errorMsg *string
	if err := r.db.QueryRow(ctx, assignUserRoleSQL, in.UserID, in.RoleID).Scan(&errorMsg); err != nil {
		return dto.UserRoleResult{}, err
	}

	if errorMsg == nil || *errorMsg == "" {
		return dto.UserRoleResult{IsAssigned: true, Message: "Role Assigned Successfully"}, nil
	}
	return dto.UserRoleResult{Message: *errorMsg}, nil
}

func (r *userRepository) ListAll(ctx context.Context, isActive *bool) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, listAllUsersSQL, isActive)
	if err != nil {
		return nil, err
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	rows, err := r.db.Query(ctx, getUserByIDSQL, id)
	if err != nil {
		return nil, err
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.User])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, in dto.UpdateUserRequest, modifiedBy string) (dto.UpdateUserResult, error) {
	result := dto.UpdateUserResult{UserID: in.UserID}

	var errorMsg *string
	err := r.db.QueryRow(ctx, updateUserSQL, in.UserID, in.Email, in.Password, modifiedBy).Scan(&errorMsg)
	if err != nil {
		return dto.UpdateUserResult{}, err
	}

	if errorMsg == nil || *errorMsg == "" {
		result.IsUpdated = true
		result.Message = "User info Updated Successfully"
		return result, nil
	}
	result.Message = *errorMsg
	return result, nil
}

// Delete deactivates the account through the shared toggle procedure; the row
// is never removed.
func (r *userRepository) Delete(ctx context.Context, id int) (dto.DeleteUserResult, error) {
	success, message, err := r.ToggleActive(ctx, id, false)
	if err != nil {
		return dto.DeleteUserResult{}, err
	}
	if success {
		return dto.DeleteUserResult{IsDeleted: true, Message: "User Deleted Successfully"}, nil
	}
	return dto.DeleteUserResult{Message: message}, nil
}

func (r *userRepository) Login(ctx context.Context, in dto.LoginUserRequest) (dto.LoginUserResult, error) {
	var (
		userID   *int
		errorMsg *string
	)
	err := r.db.QueryRow(ctx, loginUserSQL, in.Email, in.Password).Scan(&userID, &errorMsg)
	if err != nil {
		return dto.LoginUserResult{}, err
	}

	if userID != nil && *userID > 0 {
		return dto.LoginUserResult{
			UserID:  *userID,
			IsLogin: true,
			Message: "Login Success",
		}, nil
	}

	message := "Login Failed"
	if errorMsg != nil && *errorMsg != "" {
		message = *errorMsg
	}
	return dto.LoginUserResult{Message: message}, nil
}

// ToggleActive returns the raw (success, message) pair; the handler builds its
// own minimal response for this endpoint.
func (r *userRepository) ToggleActive(ctx context.Context, id int, isActive bool) (bool, string, error) {
	var errorMsg *string
	if err := r.db.QueryRow(ctx, toggleUserActiveSQL, id, isActive).Scan(&errorMsg); err != nil {
		return false, "", err
	}
	if errorMsg == nil || *errorMsg == "" {
		return true, "", nil
	}
	return false, *errorMsg, nil
}
