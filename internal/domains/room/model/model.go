package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
	"github.com/Satyam7Parsad/hotel-management-system/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomTypeID  = "room_type_id"
	FieldFloorNumber = "floor_number"
	FieldStatus      = "status"
	FieldNotes       = "notes"
)

// RoomStatus is the physical room state, stored with these exact
// case-sensitive encodings.
type RoomStatus string

const (
	StatusAvailable   RoomStatus = "available"
	StatusOccupied    RoomStatus = "occupied"
	StatusMaintenance RoomStatus = "maintenance"
	StatusReserved    RoomStatus = "reserved"
)

// ParseRoomStatus decodes a stored status string, failing on unrecognized
// values instead of defaulting.
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved:
		return RoomStatus(s), nil
	default:
		return "", failure.Validationf("unrecognized room status %q", s)
	}
}

func (s *RoomStatus) Scan(src any) error {
	var raw string

	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into RoomStatus", src)
	}

	parsed, err := ParseRoomStatus(raw)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

func (s RoomStatus) Value() (driver.Value, error) {
	return string(s), nil
}

type Room struct {
	ID          int64                `db:"id" insert:"-"`
	RoomNumber  string               `db:"room_number" validate:"required,alphanum,max=10"`
	RoomTypeID  int64                `db:"room_type_id" validate:"gt=0"`
	FloorNumber int                  `db:"floor_number" validate:"gt=0"`
	Status      RoomStatus           `db:"status"`
	Notes       model.NullableString `db:"notes"`
	model.Metadata
}

// IsAvailable reports whether the room is open for new bookings.
func (r *Room) IsAvailable() bool {
	return r.Status == StatusAvailable
}

func (r *Room) IsOccupied() bool {
	return r.Status == StatusOccupied
}
