package dto

import (
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/room/model"
	gModel "github.com/Satyam7Parsad/hotel-management-system/shared/model"
)

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" validate:"required,alphanum,max=10"`
	RoomTypeID  int64  `json:"room_type_id" validate:"required,gt=0"`
	FloorNumber int    `json:"floor_number" validate:"required,gt=0"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// ToModel builds a room from the request. An empty status defaults to
// available; anything else must decode to a known status.
func (r CreateRoomRequest) ToModel() (model.Room, error) {
	status := model.StatusAvailable

	if r.Status != "" {
		parsed, err := model.ParseRoomStatus(r.Status)
		if err != nil {
			return model.Room{}, err
		}

		status = parsed
	}

	return model.Room{
		RoomNumber:  r.RoomNumber,
		RoomTypeID:  r.RoomTypeID,
		FloorNumber: r.FloorNumber,
		Status:      status,
		Notes:       gModel.NullableString(r.Notes),
	}, nil
}

type UpdateRoomRequest struct {
	RoomNumber  *string `json:"room_number" validate:"omitempty,alphanum,max=10"`
	RoomTypeID  *int64  `json:"room_type_id" validate:"omitempty,gt=0"`
	FloorNumber *int    `json:"floor_number" validate:"omitempty,gt=0"`
	Notes       *string `json:"notes"`
}

func (r UpdateRoomRequest) IsEmpty() bool {
	return r.RoomNumber == nil && r.RoomTypeID == nil && r.FloorNumber == nil && r.Notes == nil
}

// Fields returns the column updates for the set fields.
func (r UpdateRoomRequest) Fields() map[string]any {
	fields := map[string]any{}

	if r.RoomNumber != nil {
		fields[model.FieldRoomNumber] = *r.RoomNumber
	}

	if r.RoomTypeID != nil {
		fields[model.FieldRoomTypeID] = *r.RoomTypeID
	}

	if r.FloorNumber != nil {
		fields[model.FieldFloorNumber] = *r.FloorNumber
	}

	if r.Notes != nil {
		fields[model.FieldNotes] = *r.Notes
	}

	return fields
}
