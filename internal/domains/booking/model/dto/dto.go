package dto

import (
	"github.com/Satyam7Parsad/hotel-management-system/internal/calendar"
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/booking/model"
	gModel "github.com/Satyam7Parsad/hotel-management-system/shared/model"
)

type CreateBookingRequest struct {
	GuestID         int64   `json:"guest_id" validate:"required,gt=0"`
	RoomID          int64   `json:"room_id" validate:"required,gt=0"`
	CheckInDate     string  `json:"check_in_date" validate:"required"`
	CheckOutDate    string  `json:"check_out_date" validate:"required"`
	NumAdults       int     `json:"num_adults" validate:"required,gt=0"`
	NumChildren     int     `json:"num_children" validate:"gte=0"`
	SpecialRequests string  `json:"special_requests"`
	TotalAmount     float64 `json:"total_amount" validate:"gte=0"`
}

// ToModel parses the date strings and builds a pending booking. Date range
// and occupancy invariants are re-checked on the model so no malformed
// booking can reach the store.
func (r CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := calendar.ParseDate(r.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := calendar.ParseDate(r.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		GuestID:         r.GuestID,
		RoomID:          r.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumAdults:       r.NumAdults,
		NumChildren:     r.NumChildren,
		Status:          model.StatusPending,
		SpecialRequests: gModel.NullableString(r.SpecialRequests),
		TotalAmount:     gModel.NullableFloat(r.TotalAmount),
	}

	if err := booking.Validate(); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

// UpdateBookingRequest mutates the fields that stay mutable after creation.
// The date range is immutable: rescheduling is not an operation this core
// supports.
type UpdateBookingRequest struct {
	NumAdults       *int     `json:"num_adults" validate:"omitempty,gt=0"`
	NumChildren     *int     `json:"num_children" validate:"omitempty,gte=0"`
	SpecialRequests *string  `json:"special_requests"`
	TotalAmount     *float64 `json:"total_amount" validate:"omitempty,gte=0"`
}

func (r UpdateBookingRequest) IsEmpty() bool {
	return r.NumAdults == nil && r.NumChildren == nil && r.SpecialRequests == nil && r.TotalAmount == nil
}

// Fields returns the column updates for the set fields.
func (r UpdateBookingRequest) Fields() map[string]any {
	fields := map[string]any{}

	if r.NumAdults != nil {
		fields[model.FieldNumAdults] = *r.NumAdults
	}

	if r.NumChildren != nil {
		fields[model.FieldNumChildren] = *r.NumChildren
	}

	if r.SpecialRequests != nil {
		fields[model.FieldSpecialRequests] = *r.SpecialRequests
	}

	if r.TotalAmount != nil {
		fields[model.FieldTotalAmount] = *r.TotalAmount
	}

	return fields
}
