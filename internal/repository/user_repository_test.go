package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
)

func setupUserRepo(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewUserRepository(mock)
}

func TestUserAdd_Success(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery(addUserSQL).
		WithArgs("guest@hotel.test", "s3cret", "System").
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "ErrorMessage"}).
			AddRow(5, nil))

	result, err := repo.Add(context.Background(), dto.CreateUserRequest{Email: "guest@hotel.test", Password: "s3cret"}, "System")

	require.NoError(t, err)
	assert.True(t, result.IsCreated)
	assert.Equal(t, 5, result.UserID)
	assert.Equal(t, "User Created Successfully", result.Message)
}

// A UserID of -1 signals a rejected creation, typically a duplicate email.
func TestUserAdd_DuplicateEmail(t *testing.T) {
	mock, repo := setupUserRepo(t)

	errMsg := "Email already exists."
	mock.ExpectQuery(addUserSQL).
		WithArgs("guest@hotel.test", "s3cret", "System").
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "ErrorMessage"}).
			AddRow(-1, &errMsg))

	result, err := repo.Add(context.Background(), dto.CreateUserRequest{Email: "guest@hotel.test", Password: "s3cret"}, "System")

	require.NoError(t, err)
	assert.False(t, result.IsCreated)
	assert.Equal(t, "Email already exists.", result.Message)
}

func TestUserAssignRole_EmptyMessageMeansSuccess(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery(assignUserRoleSQL).
		WithArgs(5, 2).
		WillReturnRows(pgxmock.NewRows([]string{"ErrorMessage"}).AddRow(nil))

	result, err := repo.AssignRole(context.Background(), dto.UserRoleRequest{UserID: 5, RoleID: 2})

	require.NoError(t, err)
	assert.True(t, result.IsAssigned)
	assert.Equal(t, "Role Assigned Successfully", result.Message)
}

func TestUserListAll_EmptyResultYieldsEmptySlice(t *testing.T) {
	mock, repo := setupUserRepo(t)

	active := false
	mock.ExpectQuery(listAllUsersSQL).
		WithArgs(&active).
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "Email", "IsActive", "RoleID", "LastLogin"}))

	users, err := repo.ListAll(context.Background(), &active)

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserGetByID_NotFound(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery(getUserByIDSQL).
		WithArgs(404).
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "Email", "IsActive", "RoleID", "LastLogin"}))

	user, err := repo.GetByID(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserGetByID_NullLastLogin(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery(getUserByIDSQL).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "Email", "IsActive", "RoleID", "LastLogin"}).
			AddRow(5, "guest@hotel.test", true, 3, (*time.Time)(nil)))

	user, err := repo.GetByID(context.Background(), 5)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "guest@hotel.test", user.Email)
	assert.Nil(t, user.LastLogin)
}

func TestUserLogin_Success(t *testing.T) {
	mock, repo := setupUserRepo(t)

	userID := 5
	mock.ExpectQuery(loginUserSQL).
		WithArgs("guest@hotel.test", "s3cret").
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "ErrorMessage"}).
			AddRow(&userID, nil))

	result, err := repo.Login(context.Background(), dto.LoginUserRequest{Email: "guest@hotel.test", Password: "s3cret"})

	require.NoError(t, err)
	assert.True(t, result.IsLogin)
	assert.Equal(t, 5, result.UserID)
	assert.Equal(t, "Login Success", result.Message)
}

func TestUserLogin_BadCredentials(t *testing.T) {
	mock, repo := setupUserRepo(t)

	errMsg := "Invalid Email or Password."
	mock.ExpectQuery(loginUserSQL).
		WithArgs("guest@hotel.test", "wrong").
		WillReturnRows(pgxmock.NewRows([]string{"UserID", "ErrorMessage"}).
			AddRow((*int)(nil), &errMsg))

	result, err := repo.Login(context.Background(), dto.LoginUserRequest{Email: "guest@hotel.test", Password: "wrong"})

	require.NoError(t, err)
	assert.False(t, result.IsLogin)
	assert.Equal(t, "Invalid Email or Password.", result.Message)
}

// Delete rides on the same procedure as the explicit toggle; deactivating an
// already inactive user still succeeds.
func TestUserDelete_UsesToggleProcedure(t *testing.T) {
	mock, repo := setupUserRepo(t)

	mock.ExpectQuery(toggleUserActiveSQL).
		WithArgs(5, false).
		WillReturnRows(pgxmock.NewRows([]string{"ErrorMessage"}).AddRow(nil))

	result, err := repo.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, result.IsDeleted)
	assert.Equal(t, "User Deleted Successfully", result.Message)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserToggleActive_Failure(t *testing.T) {
	mock, repo := setupUserRepo(t)

	errMsg := "User not found."
	mock.ExpectQuery(toggleUserActiveSQL).
		WithArgs(404, true).
		WillReturnRows(pgxmock.NewRows([]string{"ErrorMessage"}).AddRow(&errMsg))

	success, message, err := repo.ToggleActive(context.Background(), 404, true)

	require.NoError(t, err)
	assert.False(t, success)
	assert.Equal(t, "User not found.", message)
}
