package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	testCases := []struct {
		name string
		user User
		ok   bool
	}{
		{`seeker searching`, User{Id: `u1`, Email: `a@b`, Role: RoleSeeker, Status: SeekerSearching}, true},
		{`seeker booked`, User{Id: `u1`, Email: `a@b`, Role: RoleSeeker, Status: SeekerBooked}, true},
		{`suspended owner`, User{Id: `u1`, Email: `a@b`, Role: RoleOwner, Status: UserSuspended}, true},
		{`admin without status`, User{Id: `u1`, Email: `a@b`, Role: RoleAdmin}, true},
		{`seeker with owner status`, User{Id: `u1`, Email: `a@b`, Role: RoleSeeker, Status: OwnerVerified}, false},
		{`unknown role`, User{Id: `u1`, Email: `a@b`, Role: `manager`, Status: ``}, false},
		{`missing email`, User{Id: `u1`, Role: RoleSeeker, Status: SeekerSearching}, false},
		{`missing id`, User{Email: `a@b`, Role: RoleSeeker, Status: SeekerSearching}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.user.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMalformedRecord)
			}
		})
	}
}

func TestPropertyValidate(t *testing.T) {
	assert.NoError(t, Property{Id: `p1`, OwnerId: `o1`, Status: PropertyPending}.Validate())
	assert.ErrorIs(t, Property{Id: `p1`, OwnerId: `o1`, Status: `approved`}.Validate(), ErrMalformedRecord)
	assert.ErrorIs(t, Property{Id: `p1`, Status: PropertyPending}.Validate(), ErrMalformedRecord)
}

func TestRoomValidate(t *testing.T) {
	assert.NoError(t, Room{Id: `r1`, PropertyId: `p1`, VerificationStatus: RoomReverify}.Validate())
	assert.ErrorIs(t, Room{Id: `r1`, PropertyId: `p1`, VerificationStatus: `ok`}.Validate(), ErrMalformedRecord)
}
