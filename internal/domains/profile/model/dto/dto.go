package dto

import (
	"nomad/internal/domains/profile/model"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"

	"github.com/google/uuid"
)

// NewProfile returns the empty profile created alongside every account.
func NewProfile(userID, username string) model.Profile {
	return model.Profile{
		ID:       uuid.NewString(),
		UserID:   userID,
		Metadata: gModel.NewMetadata(username, timezone.Now()),
	}
}

type UpdateProfileRequest struct {
	ManagerID         *string `db:"manager_id"         json:"manager_id"         validate:"omitempty,uuid"`
	Department        *string `db:"department"         json:"department"         validate:"omitempty,max=100"`
	PhoneNumber       *string `db:"phone_number"       json:"phone_number"       validate:"omitempty,e164"`
	Gender            *string `db:"gender"             json:"gender"             validate:"omitempty,oneof=male female other"`
	PreferredLanguage *string `db:"preferred_language" json:"preferred_language" validate:"omitempty,bcp47_language_tag"`
	PreferredCurrency *string `db:"preferred_currency" json:"preferred_currency" validate:"omitempty,iso4217"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.ManagerID == nil && r.Department == nil && r.PhoneNumber == nil &&
		r.Gender == nil && r.PreferredLanguage == nil && r.PreferredCurrency == nil
}

type UploadImageRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

type ProfileResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	ManagerID         *string `json:"manager_id"`
	Department        *string `json:"department"`
	PhoneNumber       *string `json:"phone_number"`
	Gender            *string `json:"gender"`
	PreferredLanguage *string `json:"preferred_language"`
	PreferredCurrency *string `json:"preferred_currency"`
	ImageURL          *string `json:"image_url"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(model model.ProfileDetail) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Role = constant.RoleNames[model.RoleID]
	r.ManagerID = model.ManagerID
	r.Department = model.Department
	r.PhoneNumber = model.PhoneNumber
	r.Gender = model.Gender
	r.PreferredLanguage = model.PreferredLanguage
	r.PreferredCurrency = model.PreferredCurrency
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}
