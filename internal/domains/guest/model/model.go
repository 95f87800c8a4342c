package model

import (
	"github.com/Satyam7Parsad/hotel-management-system/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldNationality = "nationality"
	FieldVIPStatus   = "vip_status"
)

type Guest struct {
	ID          int64                `db:"id" insert:"-"`
	FirstName   string               `db:"first_name" validate:"required,max=100"`
	LastName    string               `db:"last_name" validate:"required,max=100"`
	Email       model.NullableString `db:"email" validate:"omitempty,email"`
	Phone       string               `db:"phone" validate:"required"`
	Address     model.NullableString `db:"address"`
	IDType      string               `db:"id_type" validate:"required,oneof=passport drivers_license national_id"`
	IDNumber    string               `db:"id_number" validate:"required,max=100"`
	DateOfBirth model.NullableString `db:"date_of_birth"`
	Nationality model.NullableString `db:"nationality"`
	VIPStatus   bool                 `db:"vip_status"`
	model.Metadata
}

// FullName joins the guest's names for display.
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
