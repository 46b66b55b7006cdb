package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage/mocks"
)

func TestFixSeekerStatuses(t *testing.T) {
	mockDB := new(mocks.Database)

	users := []models.User{
		// booked booking but still marked searching: must flip to booked
		{Id: `s1`, Email: `s1@x`, Role: models.RoleSeeker, Status: models.SeekerSearching},
		// no bookings but marked booked: must flip to searching
		{Id: `s2`, Email: `s2@x`, Role: models.RoleSeeker, Status: models.SeekerBooked},
		// already consistent, no write
		{Id: `s3`, Email: `s3@x`, Role: models.RoleSeeker, Status: models.SeekerSearching},
		// suspended seekers are never touched
		{Id: `s4`, Email: `s4@x`, Role: models.RoleSeeker, Status: models.UserSuspended},
		// owners are out of scope
		{Id: `o1`, Email: `o1@x`, Role: models.RoleOwner, Status: models.OwnerVerified},
	}

	mockDB.On(`GetAllUsers`).Return(users, nil).Once()
	mockDB.On(`CountBookedBookings`, `s1`).Return(1, nil).Once()
	mockDB.On(`CountBookedBookings`, `s2`).Return(0, nil).Once()
	mockDB.On(`CountBookedBookings`, `s3`).Return(0, nil).Once()
	mockDB.On(`UpdateUserStatus`, `s1`, models.SeekerBooked).Return(nil).Once()
	mockDB.On(`UpdateUserStatus`, `s2`, models.SeekerSearching).Return(nil).Once()

	fixed, err := FixSeekerStatuses(mockDB)

	assert.NoError(t, err)
	assert.Equal(t, 2, fixed)
	mockDB.AssertExpectations(t)
	mockDB.AssertNotCalled(t, `CountBookedBookings`, `s4`)
	mockDB.AssertNotCalled(t, `CountBookedBookings`, `o1`)
}
