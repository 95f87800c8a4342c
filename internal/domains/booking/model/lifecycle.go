package model

import (
	"time"

	"github.com/Satyam7Parsad/hotel-management-system/shared/failure"
)

// The booking lifecycle:
//
//	pending --confirm--> confirmed --check_in--> checked_in --check_out--> checked_out
//	pending/confirmed/checked_in --cancel--> cancelled
//
// checked_out and cancelled are terminal. A transition that fails leaves the
// booking untouched.

// IsActive reports whether the booking blocks room availability.
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// IsTerminal reports whether no further transition is legal.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCheckedOut || b.Status == StatusCancelled
}

// CanCheckIn reports whether the check-in precondition holds.
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanCheckOut reports whether the check-out precondition holds.
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// Confirm moves a pending booking to confirmed.
func (b *Booking) Confirm() error {
	if b.Status != StatusPending {
		return failure.IllegalTransition("can only confirm a pending booking, current status is " + string(b.Status))
	}

	b.Status = StatusConfirmed

	return nil
}

// CheckIn moves a confirmed booking to checked_in and stamps the actual
// check-in time.
func (b *Booking) CheckIn(now time.Time) error {
	if !b.CanCheckIn() {
		return failure.IllegalTransition("can only check in a confirmed booking, current status is " + string(b.Status))
	}

	b.Status = StatusCheckedIn
	b.ActualCheckIn = &now

	return nil
}

// CheckOut moves a checked_in booking to checked_out and stamps the actual
// check-out time.
func (b *Booking) CheckOut(now time.Time) error {
	if !b.CanCheckOut() {
		return failure.IllegalTransition("can only check out a checked-in booking, current status is " + string(b.Status))
	}

	b.Status = StatusCheckedOut
	b.ActualCheckOut = &now

	return nil
}

// Cancel moves any non-terminal booking to cancelled.
func (b *Booking) Cancel() error {
	if b.IsTerminal() {
		return failure.IllegalTransition("cannot cancel a booking that is already " + string(b.Status))
	}

	b.Status = StatusCancelled

	return nil
}
