// Package verification holds the status transition rules for properties and
// rooms. The store only ever receives statuses that came out of these
// functions, so the transition tables are the single place the rules live.
package verification

import (
	"errors"
	"fmt"

	"roomstayAdmin/internal/models"
)

var ErrInvalidTransition = errors.New(`invalid status transition`)

func invalid(entity, from, to string) error {
	return fmt.Errorf(`%w: %s %s -> %s`, ErrInvalidTransition, entity, from, to)
}

// VerifyProperty moves a property to verified. Verifying an already verified
// property is allowed and overwrites the verification date. Rejected is
// terminal.
func VerifyProperty(current string) (string, error) {
	switch current {
	case models.PropertyPending, models.PropertyVerified:
		return models.PropertyVerified, nil
	}
	return ``, invalid(`property`, current, models.PropertyVerified)
}

// UnverifyProperty demotes a verified property back to pending.
func UnverifyProperty(current string) (string, error) {
	if current == models.PropertyVerified {
		return models.PropertyPending, nil
	}
	return ``, invalid(`property`, current, models.PropertyPending)
}

// RejectProperty rejects from any live state. There is no transition out of
// rejected.
func RejectProperty(current string) (string, error) {
	switch current {
	case models.PropertyPending, models.PropertyVerified, models.PropertyRejected:
		return models.PropertyRejected, nil
	}
	return ``, invalid(`property`, current, models.PropertyRejected)
}

// VerifyRoom accepts rooms awaiting a first or repeat verification. As with
// properties, re-verifying a verified room just refreshes the stamp.
func VerifyRoom(current string) (string, error) {
	switch current {
	case models.RoomPending, models.RoomReverify, models.RoomVerified:
		return models.RoomVerified, nil
	}
	return ``, invalid(`room`, current, models.RoomVerified)
}

func UnverifyRoom(current string) (string, error) {
	if current == models.RoomVerified {
		return models.RoomPending, nil
	}
	return ``, invalid(`room`, current, models.RoomPending)
}

func RejectRoom(current string) (string, error) {
	switch current {
	case models.RoomPending, models.RoomReverify, models.RoomVerified, models.RoomRejected:
		return models.RoomRejected, nil
	}
	return ``, invalid(`room`, current, models.RoomRejected)
}

// ScheduleRoomStatus is the status a room takes when a verification visit is
// scheduled for it. Scheduling always resets the room to pending, even when
// it is currently verified. Property-level scheduling has no such effect.
func ScheduleRoomStatus(string) string {
	return models.RoomPending
}

// BulkScheduleStatuses are the rooms a property-wide schedule touches:
// only rooms still awaiting a visit. The storage layer filters on this
// slice directly.
var BulkScheduleStatuses = []string{models.RoomPending, models.RoomReverify}
