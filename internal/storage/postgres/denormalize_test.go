package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

func TestResolveOwnerNames(t *testing.T) {
	properties := []models.Property{
		{Id: `p1`, OwnerId: `owner-1`},
		{Id: `p2`, OwnerId: `owner-1`},
		{Id: `p3`, OwnerId: `owner-2`},
		{Id: `p4`, OwnerId: `ghost`},
	}

	lookups := 0
	lookup := func(id string) (models.User, error) {
		lookups++
		switch id {
		case `owner-1`:
			return models.User{Id: id, FirstName: `Maria`, LastName: `Santos`}, nil
		case `owner-2`:
			return models.User{Id: id, FirstName: `Jose`, LastName: `Cruz`}, nil
		}
		return models.User{}, storage.ErrNotFound
	}

	resolveOwnerNames(properties, lookup)

	assert.Equal(t, `Maria Santos`, properties[0].OwnerName)
	assert.Equal(t, `Maria Santos`, properties[1].OwnerName)
	assert.Equal(t, `Jose Cruz`, properties[2].OwnerName)
	assert.Equal(t, models.UnknownOwner, properties[3].OwnerName)

	// one point-read per unique owner id, not per property
	assert.Equal(t, 3, lookups)
}
