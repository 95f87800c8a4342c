package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/Satyam7Parsad/hotel-management-system/internal/calendar"
	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
	"github.com/Satyam7Parsad/hotel-management-system/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomID         = "room_id"
	FieldCheckInDate    = "check_in_date"
	FieldCheckOutDate   = "check_out_date"
	FieldActualCheckIn  = "actual_check_in"
	FieldActualCheckOut = "actual_check_out"
	FieldNumAdults       = "num_adults"
	FieldNumChildren     = "num_children"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"
	FieldTotalAmount     = "total_amount"
)

// BookingStatus is the booking lifecycle state. The string values are the
// exact case-sensitive encodings stored in and queried from the database.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// ActiveStatuses are the in-force statuses, confirmed or checked in.
var ActiveStatuses = []BookingStatus{StatusConfirmed, StatusCheckedIn}

// ParseBookingStatus decodes a stored status string. Unrecognized values
// fail instead of defaulting, so a corrupted row surfaces immediately.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", failure.Validationf("unrecognized booking status %q", s)
	}
}

func (s *BookingStatus) Scan(src any) error {
	var raw string

	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into BookingStatus", src)
	}

	parsed, err := ParseBookingStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

func (s BookingStatus) Value() (driver.Value, error) {
	return string(s), nil
}

type Booking struct {
	ID              int64                `db:"id" insert:"-"`
	GuestID         int64                `db:"guest_id" validate:"gt=0"`
	RoomID          int64                `db:"room_id" validate:"gt=0"`
	CheckInDate     time.Time            `db:"check_in_date"`
	CheckOutDate    time.Time            `db:"check_out_date"`
	ActualCheckIn   *time.Time           `db:"actual_check_in"`
	ActualCheckOut  *time.Time           `db:"actual_check_out"`
	NumAdults       int                  `db:"num_adults" validate:"gt=0"`
	NumChildren     int                  `db:"num_children" validate:"gte=0"`
	Status          BookingStatus        `db:"status"`
	SpecialRequests model.NullableString `db:"special_requests"`
	TotalAmount     model.NullableFloat  `db:"total_amount" validate:"gte=0"`
	model.Metadata
}

// Validate checks the creation invariants before any store write happens.
func (b *Booking) Validate() error {
	if b.GuestID <= 0 {
		return failure.Validation("guest reference must be positive")
	}

	if b.RoomID <= 0 {
		return failure.Validation("room reference must be positive")
	}

	if calendar.CompareDates(b.CheckInDate, b.CheckOutDate) >= 0 {
		return failure.Validation("check-in date must be before check-out date")
	}

	if b.NumAdults <= 0 {
		return failure.Validation("at least one adult is required")
	}

	if b.NumChildren < 0 {
		return failure.Validation("child count cannot be negative")
	}

	if b.TotalAmount < 0 {
		return failure.Validation("total amount cannot be negative")
	}

	return nil
}

// DurationDays returns the stay length in nights.
func (b *Booking) DurationDays() int {
	return calendar.DaysBetween(b.CheckInDate, b.CheckOutDate)
}
