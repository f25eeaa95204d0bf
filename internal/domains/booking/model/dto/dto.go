package dto

import (
	"nomad/internal/domains/booking/model"
	"nomad/shared"
	gDto "nomad/shared/dto"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID        string  `json:"room_id"         validate:"required,uuid"`
	CheckIn       string  `json:"check_in"        validate:"required,datetime=2006-01-02,notpast"`
	CheckOut      string  `json:"check_out"       validate:"required,datetime=2006-01-02"`
	TripRequestID *string `json:"trip_request_id" validate:"omitempty,uuid"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.ParseDate(c.CheckIn)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(c.CheckOut)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		UserID:        user,
		TripRequestID: c.TripRequestID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

type BookingResponse struct {
	ID                string  `json:"id"`
	BookerID          string  `json:"booker_id"`
	RoomID            string  `json:"room_id"`
	RoomName          string  `json:"room_name"`
	AccommodationID   string  `json:"accommodation_id"`
	AccommodationName string  `json:"accommodation_name"`
	TravelAdminID     string  `json:"travel_admin_id"`
	TripRequestID     *string `json:"trip_request_id"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	Nights            int     `json:"nights"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.BookingDetail) {
	r.ID = model.ID
	r.BookerID = model.UserID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.AccommodationID = model.AccommodationID
	r.AccommodationName = model.AccommodationName
	r.TravelAdminID = model.TravelAdminID
	r.TripRequestID = model.TripRequestID
	r.CheckIn = timezone.FormatDate(model.CheckIn)
	r.CheckOut = timezone.FormatDate(model.CheckOut)
	r.Nights = timezone.Nights(model.CheckIn, model.CheckOut)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
