package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func reservedOf(t *testing.T, r *Room) []string {
	t.Helper()
	days, err := r.ReservedDays()
	require.NoError(t, err)
	return days
}

func TestReserveAppendsToLedger(t *testing.T) {
	room := &Room{}
	require.NoError(t, room.Reserve([]string{"2026-06-01", "2026-06-02"}))
	require.NoError(t, room.Reserve([]string{"2026-06-05"}))

	assert.Equal(t, []string{"2026-06-01", "2026-06-02", "2026-06-05"}, reservedOf(t, room))
}

func TestConflictingDaysReturnsOverlapOnly(t *testing.T) {
	room := &Room{}
	require.NoError(t, room.Reserve([]string{"2026-06-01", "2026-06-02"}))

	conflicts, err := room.ConflictingDays([]string{"2026-06-02", "2026-06-03"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-02"}, conflicts)

	conflicts, err = room.ConflictingDays([]string{"2026-06-03", "2026-06-04"})
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestConflictingDaysMatchesLegacyTimestampEntries(t *testing.T) {
	// rows written before day normalization may carry a time-of-day component
	room := &Room{NotAvailable: datatypes.JSON(`["2026-06-01T14:00:00Z"]`)}

	conflicts, err := room.ConflictingDays([]string{"2026-06-01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-01"}, conflicts)
}

func TestReleaseRemovesOnlyGivenDays(t *testing.T) {
	room := &Room{}
	require.NoError(t, room.Reserve([]string{"2026-06-01", "2026-06-02", "2026-06-03"}))

	require.NoError(t, room.Release([]string{"2026-06-01", "2026-06-03"}))
	assert.Equal(t, []string{"2026-06-02"}, reservedOf(t, room))
}

func TestReleaseIgnoresAbsentDays(t *testing.T) {
	room := &Room{}
	require.NoError(t, room.Reserve([]string{"2026-06-01"}))

	require.NoError(t, room.Release([]string{"2026-06-09"}))
	assert.Equal(t, []string{"2026-06-01"}, reservedOf(t, room))

	// repeated release is a no-op
	require.NoError(t, room.Release([]string{"2026-06-01"}))
	require.NoError(t, room.Release([]string{"2026-06-01"}))
	assert.Empty(t, reservedOf(t, room))
}

func TestReservedDaysEmptyLedger(t *testing.T) {
	room := &Room{}
	assert.Empty(t, reservedOf(t, room))

	room.NotAvailable = datatypes.JSON(`[]`)
	assert.Empty(t, reservedOf(t, room))
}

func TestReservedDaysRejectsCorruptLedger(t *testing.T) {
	room := &Room{NotAvailable: datatypes.JSON(`{"bad":"shape"}`)}
	_, err := room.ReservedDays()
	assert.Error(t, err)
}
