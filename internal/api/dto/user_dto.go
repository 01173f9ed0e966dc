package dto

import (
	"errors"
	"regexp"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateEmail(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if !emailRe.MatchString(email) {
		return errors.New("invalid email address")
	}
	return nil
}

// CreateUserRequest is the payload for creating a user. The password is an
// opaque credential; the store hashes it.
type CreateUserRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

func (r CreateUserRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("Password is required")
	}
	return nil
}

// LoginUserRequest is the credential payload for login.
type LoginUserRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

func (r LoginUserRequest) Validate() error {
	return CreateUserRequest(r).Validate()
}

// UpdateUserRequest is the payload for updating a user; UserID must match the
// path id.
type UpdateUserRequest struct {
	UserID   int    `json:"UserID"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

func (r UpdateUserRequest) Validate() error {
	if r.UserID < 1 {
		return errors.New("UserID must be a positive integer")
	}
	return CreateUserRequest{Email: r.Email, Password: r.Password}.Validate()
}

// UserRoleRequest assigns a role to a user; last write wins.
type UserRoleRequest struct {
	UserID int `json:"UserID"`
	RoleID int `json:"RoleID"`
}

func (r UserRoleRequest) Validate() error {
	if r.UserID < 1 {
		return errors.New("UserID is required")
	}
	if r.RoleID < 1 {
		return errors.New("RoleID is required")
	}
	return nil
}

// CreateUserResult reports the outcome of a user creation.
type CreateUserResult struct {
	UserID    int    `json:"UserId"`
	IsCreated bool   `json:"IsCreated"`
	Message   string `json:"Message"`
}

// UserRoleResult reports the outcome of a role assignment.
type UserRoleResult struct {
	IsAssigned bool   `json:"IsAssigned"`
	Message    string `json:"Message"`
}

// UpdateUserResult reports the outcome of a user update.
type UpdateUserResult struct {
	UserID    int    `json:"UserId"`
	IsUpdated bool   `json:"IsUpdated"`
	Message   string `json:"Message"`
}

// DeleteUserResult reports the outcome of a user deactivation.
type DeleteUserResult struct {
	IsDeleted bool   `json:"IsDeleted"`
	Message   string `json:"Message"`
}

// LoginUserResult is the login outcome. Token is an identity token issued on
// success so callers can assert who they are on later write requests.
type LoginUserResult struct {
	UserID  int    `json:"UserId"`
	IsLogin bool   `json:"IsLogin"`
	Message string `json:"Message"`
	Token   string `json:"Token,omitempty"`
}
