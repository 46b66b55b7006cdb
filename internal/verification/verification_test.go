package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomstayAdmin/internal/models"
)

func TestVerifyPropertyIdempotent(t *testing.T) {
	status, err := VerifyProperty(models.PropertyPending)
	assert.NoError(t, err)
	assert.Equal(t, models.PropertyVerified, status)

	// second verify lands on the same status
	status, err = VerifyProperty(status)
	assert.NoError(t, err)
	assert.Equal(t, models.PropertyVerified, status)
}

func TestRejectedPropertyIsTerminal(t *testing.T) {
	_, err := VerifyProperty(models.PropertyRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = UnverifyProperty(models.PropertyRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	status, err := RejectProperty(models.PropertyRejected)
	assert.NoError(t, err)
	assert.Equal(t, models.PropertyRejected, status)
}

func TestUnverifyProperty(t *testing.T) {
	status, err := UnverifyProperty(models.PropertyVerified)
	assert.NoError(t, err)
	assert.Equal(t, models.PropertyPending, status)

	_, err = UnverifyProperty(models.PropertyPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestVerifyRoom(t *testing.T) {
	testCases := []struct {
		from     string
		expected string
		ok       bool
	}{
		{models.RoomPending, models.RoomVerified, true},
		{models.RoomReverify, models.RoomVerified, true},
		{models.RoomVerified, models.RoomVerified, true},
		{models.RoomRejected, ``, false},
	}

	for _, tc := range testCases {
		status, err := VerifyRoom(tc.from)
		if tc.ok {
			assert.NoError(t, err, `verify from %s`, tc.from)
			assert.Equal(t, tc.expected, status)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, `verify from %s`, tc.from)
		}
	}
}

func TestUnverifyRoom(t *testing.T) {
	status, err := UnverifyRoom(models.RoomVerified)
	assert.NoError(t, err)
	assert.Equal(t, models.RoomPending, status)

	_, err = UnverifyRoom(models.RoomReverify)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRejectRoomFromAnyState(t *testing.T) {
	for _, from := range []string{models.RoomPending, models.RoomReverify, models.RoomVerified, models.RoomRejected} {
		status, err := RejectRoom(from)
		assert.NoError(t, err, `reject from %s`, from)
		assert.Equal(t, models.RoomRejected, status)
	}
}

// Scheduling a visit must reset every room to pending, including rooms that
// are already verified. This is deliberate: a new visit re-opens the check.
func TestScheduleAlwaysResetsRoomToPending(t *testing.T) {
	for _, from := range []string{models.RoomPending, models.RoomReverify, models.RoomVerified, models.RoomRejected} {
		assert.Equal(t, models.RoomPending, ScheduleRoomStatus(from), `schedule from %s`, from)
	}
}

func TestBulkScheduleStatuses(t *testing.T) {
	assert.ElementsMatch(t, []string{models.RoomPending, models.RoomReverify}, BulkScheduleStatuses)
	assert.NotContains(t, BulkScheduleStatuses, models.RoomVerified)
	assert.NotContains(t, BulkScheduleStatuses, models.RoomRejected)
}
