package model

import (
	"nomad/shared/constant"
	"nomad/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldRoleID     = "role_id"
	FieldIsVerified = "is_verified"
	FieldSignupType = "signup_type"
	FieldLastLogin  = "last_login"
)

type User struct {
	ID         string     `db:"id"`
	FirstName  string     `db:"first_name"`
	LastName   string     `db:"last_name"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	IsVerified bool       `db:"is_verified"`
	SignupType string     `db:"signup_type"`
	RoleID     int        `db:"role_id"`
	LastLogin  *time.Time `db:"last_login"`
	model.Metadata
}

// RoleName resolves the seeded role name carried in access tokens.
func (u User) RoleName() string {
	return constant.RoleNames[u.RoleID]
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
