package model

import "nomad/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID              = "id"
	FieldAccommodationID = "accommodation_id"
	FieldName            = "name"
	FieldRoomType        = "room_type"
	FieldCost            = "cost"
	FieldIsAvailable     = "is_available"
)

type Room struct {
	ID              string  `db:"id"`
	AccommodationID string  `db:"accommodation_id"`
	Name            string  `db:"name"`
	RoomType        string  `db:"room_type"`
	Cost            float64 `db:"cost"`
	IsAvailable     bool    `db:"is_available"`
	model.Metadata
}
