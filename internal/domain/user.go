package domain

import "time"

// User is an operational account. The password credential never appears here;
// it is passed through to the store on create/update/login and hashed there.
// LastLogin is nil until the first successful login.
type User struct {
	UserID    int        `json:"UserID" db:"UserID"`
	Email     string     `json:"Email" db:"Email"`
	IsActive  bool       `json:"IsActive" db:"IsActive"`
	RoleID    int        `json:"RoleID" db:"RoleID"`
	LastLogin *time.Time `json:"LastLogin" db:"LastLogin"`
}
