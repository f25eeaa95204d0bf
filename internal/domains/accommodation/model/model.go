package model

import "nomad/shared/model"

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldCityID      = "city_id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)

// Accommodation is owned by the travel administrator who created it.
type Accommodation struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	CityID      int     `db:"city_id"`
	Name        string  `db:"name"`
	Address     string  `db:"address"`
	Description *string `db:"description"`
	ImageURL    *string `db:"image_url"`
	model.Metadata
}

type AccommodationDetail struct {
	Accommodation
	City string `db:"city" table:"cities"`
}

func (AccommodationDetail) GetJoinQuery() string {
	return "JOIN cities ON cities.id = accommodations.city_id"
}
