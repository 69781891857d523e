package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTripRecord_DerivedFields(t *testing.T) {
	startTime := time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC)

	record := NewTripRecord(startTime, "2017-06-23 15:14:53", 321, "Wood St & Hubbard St", "Damen Ave & Chicago Ave")

	assert.Equal(t, 6, record.Month)
	assert.Equal(t, "Friday", record.DayOfWeek)
	assert.Equal(t, 15, record.Hour)
	assert.Equal(t, "Wood St & Hubbard St to Damen Ave & Chicago Ave", record.Trip)
	assert.False(t, record.HasBirthYear())
}

func TestWithUser_ReturnsCopy(t *testing.T) {
	record := NewTripRecord(time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC), "", 10, "A", "B")

	withUser := record.WithUser("Subscriber", "Female", 1992)

	assert.Equal(t, "Subscriber", withUser.UserType)
	assert.Equal(t, 1992, withUser.BirthYear)
	assert.Empty(t, record.UserType)
}
