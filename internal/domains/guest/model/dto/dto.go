package dto

import (
	"github.com/Satyam7Parsad/hotel-management-system/internal/domains/guest/model"
	gModel "github.com/Satyam7Parsad/hotel-management-system/shared/model"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address"`
	IDType      string `json:"id_type" validate:"required,oneof=passport drivers_license national_id"`
	IDNumber    string `json:"id_number" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality"`
	VIPStatus   bool   `json:"vip_status"`
}

func (r CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       gModel.NullableString(r.Email),
		Phone:       r.Phone,
		Address:     gModel.NullableString(r.Address),
		IDType:      r.IDType,
		IDNumber:    r.IDNumber,
		DateOfBirth: gModel.NullableString(r.DateOfBirth),
		Nationality: gModel.NullableString(r.Nationality),
		VIPStatus:   r.VIPStatus,
	}
}

type UpdateGuestRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Nationality *string `json:"nationality"`
	VIPStatus   *bool   `json:"vip_status"`
}

func (r UpdateGuestRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil && r.Email == nil &&
		r.Phone == nil && r.Address == nil && r.Nationality == nil && r.VIPStatus == nil
}

// Fields returns the column updates for the set fields.
func (r UpdateGuestRequest) Fields() map[string]any {
	fields := map[string]any{}

	if r.FirstName != nil {
		fields[model.FieldFirstName] = *r.FirstName
	}

	if r.LastName != nil {
		fields[model.FieldLastName] = *r.LastName
	}

	if r.Email != nil {
		fields[model.FieldEmail] = *r.Email
	}

	if r.Phone != nil {
		fields[model.FieldPhone] = *r.Phone
	}

	if r.Address != nil {
		fields[model.FieldAddress] = *r.Address
	}

	if r.Nationality != nil {
		fields[model.FieldNationality] = *r.Nationality
	}

	if r.VIPStatus != nil {
		fields[model.FieldVIPStatus] = *r.VIPStatus
	}

	return fields
}
