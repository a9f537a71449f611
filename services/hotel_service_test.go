package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spothotel-backend/models"
)

func TestDayWindowInclusiveRange(t *testing.T) {
	days, err := dayWindow("2026-06-01", "2026-06-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-01", "2026-06-02", "2026-06-03"}, days)
}

func TestDayWindowSingleDay(t *testing.T) {
	days, err := dayWindow("2026-06-01", "2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-01"}, days)
}

func TestDayWindowCrossesMonthBoundary(t *testing.T) {
	days, err := dayWindow("2026-06-30", "2026-07-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-30", "2026-07-01", "2026-07-02"}, days)
}

func TestDayWindowRejectsReversedRange(t *testing.T) {
	_, err := dayWindow("2026-06-03", "2026-06-01")
	assert.ErrorIs(t, err, ErrInvalidSearch)
}

func TestDayWindowRejectsBadDates(t *testing.T) {
	_, err := dayWindow("soon", "2026-06-01")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = dayWindow("2026-06-01", "later")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestHotelHasCapacity(t *testing.T) {
	singlesOnly := &models.Hotel{Rooms: []models.Room{
		{Type: models.RoomTypeSingle},
		{Type: models.RoomTypeSingle},
	}}
	mixed := &models.Hotel{Rooms: []models.Room{
		{Type: models.RoomTypeSingle},
		{Type: models.RoomTypeDouble},
	}}
	empty := &models.Hotel{}

	assert.True(t, hotelHasCapacity(singlesOnly, 1))
	assert.False(t, hotelHasCapacity(singlesOnly, 2))
	assert.True(t, hotelHasCapacity(mixed, 2))
	assert.False(t, hotelHasCapacity(empty, 1))
}

func TestHotelHasFreeRoom(t *testing.T) {
	window := []string{"2026-06-01", "2026-06-02"}

	free := models.Room{}
	busy := models.Room{}
	require.NoError(t, busy.Reserve([]string{"2026-06-02"}))

	assert.True(t, hotelHasFreeRoom(&models.Hotel{Rooms: []models.Room{busy, free}}, window))
	assert.False(t, hotelHasFreeRoom(&models.Hotel{Rooms: []models.Room{busy}}, window))
	assert.False(t, hotelHasFreeRoom(&models.Hotel{}, window))
}
