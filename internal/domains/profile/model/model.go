package model

import "nomad/shared/model"

const (
	TableName  = "user_profiles"
	EntityName = "profile"

	FieldID                = "id"
	FieldUserID            = "user_id"
	FieldManagerID         = "manager_id"
	FieldDepartment        = "department"
	FieldPhoneNumber       = "phone_number"
	FieldGender            = "gender"
	FieldPreferredLanguage = "preferred_language"
	FieldPreferredCurrency = "preferred_currency"
	FieldImageURL          = "image_url"
)

// Profile holds the editable details of a user, including the line manager who approves their trips.
type Profile struct {
	ID                string  `db:"id"`
	UserID            string  `db:"user_id"`
	ManagerID         *string `db:"manager_id"`
	Department        *string `db:"department"`
	PhoneNumber       *string `db:"phone_number"`
	Gender            *string `db:"gender"`
	PreferredLanguage *string `db:"preferred_language"`
	PreferredCurrency *string `db:"preferred_currency"`
	ImageURL          *string `db:"image_url"`
	model.Metadata
}

func (p Profile) HasManager() bool {
	return p.ManagerID != nil && *p.ManagerID != ""
}

type ProfileDetail struct {
	Profile
	FirstName string `db:"first_name" table:"users"`
	LastName  string `db:"last_name"  table:"users"`
	Email     string `db:"email"      table:"users"`
	RoleID    int    `db:"role_id"    table:"users"`
}

func (ProfileDetail) GetJoinQuery() string {
	return "JOIN users ON users.id = user_profiles.user_id"
}
