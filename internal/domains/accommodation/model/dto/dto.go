package dto

import (
	"nomad/internal/domains/accommodation/model"
	"nomad/shared"
	gDto "nomad/shared/dto"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateAccommodationRequest struct {
	Name        string  `json:"name"        validate:"required,max=150"`
	Address     string  `json:"address"     validate:"required,max=255"`
	CityID      int     `json:"city_id"     validate:"required,gte=1"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Image       string  `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
}

func (r CreateAccommodationRequest) ToModel(userID string, imageURL *string) model.Accommodation {
	return model.Accommodation{
		ID:          uuid.NewString(),
		UserID:      userID,
		CityID:      r.CityID,
		Name:        strings.TrimSpace(r.Name),
		Address:     strings.TrimSpace(r.Address),
		Description: r.Description,
		ImageURL:    imageURL,
		Metadata:    gModel.NewMetadata(userID, timezone.Now()),
	}
}

type CreateAccommodationResponse struct {
	ID string `json:"id"`
}

type AccommodationResponse struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	CityID      int     `json:"city_id"`
	City        string  `json:"city"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	gDto.Metadata
}

func (r *AccommodationResponse) FromModel(model model.AccommodationDetail) {
	r.ID = model.ID
	r.OwnerID = model.UserID
	r.CityID = model.CityID
	r.City = model.City
	r.Name = model.Name
	r.Address = model.Address
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetAccommodationsResponse struct {
	Accommodations []AccommodationResponse `json:"accommodations"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetAccommodationsResponse) FromModels(models []model.AccommodationDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Accommodations = make([]AccommodationResponse, len(models))
	for i, mod := range models {
		r.Accommodations[i].FromModel(mod)
	}
}
