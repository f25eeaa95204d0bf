package dto

import (
	"nomad/internal/domains/room/model"
	"nomad/shared"
	gDto "nomad/shared/dto"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string  `json:"name"         validate:"required,max=100"`
	RoomType    string  `json:"room_type"    validate:"required,oneof=single double twin suite"`
	Cost        float64 `json:"cost"         validate:"required,gt=0"`
	IsAvailable *bool   `json:"is_available" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(accommodationID, user string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:              uuid.NewString(),
		AccommodationID: accommodationID,
		Name:            c.Name,
		RoomType:        c.RoomType,
		Cost:            c.Cost,
		IsAvailable:     available,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}
}

type CreateRoomResponse struct {
	ID string `json:"id"`
}

type UpdateRoomRequest struct {
	Name        *string  `db:"name"         json:"name"         validate:"omitempty,max=100"`
	RoomType    *string  `db:"room_type"    json:"room_type"    validate:"omitempty,oneof=single double twin suite"`
	Cost        *float64 `db:"cost"         json:"cost"         validate:"omitempty,gt=0"`
	IsAvailable *bool    `db:"is_available" json:"is_available" validate:"omitempty"`
}

func (r UpdateRoomRequest) IsEmpty() bool {
	return r == UpdateRoomRequest{}
}

type RoomResponse struct {
	ID              string  `json:"id"`
	AccommodationID string  `json:"accommodation_id"`
	Name            string  `json:"name"`
	RoomType        string  `json:"room_type"`
	Cost            float64 `json:"cost"`
	IsAvailable     bool    `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.AccommodationID = model.AccommodationID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.Cost = model.Cost
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
