package models

import (
	"encoding/json"

	"gorm.io/datatypes"

	"spothotel-backend/utils"
)

// The room's availability ledger: the NotAvailable column holds the set of
// calendar days reserved by active bookings, as a JSON array of day keys.
// Membership is decided at day granularity regardless of how a stored value
// was originally written, so legacy rows carrying a time-of-day component
// still compare correctly.

// ReservedDays decodes the ledger into canonical day keys.
func (r *Room) ReservedDays() ([]string, error) {
	if len(r.NotAvailable) == 0 {
		return nil, nil
	}
	var raw []string
	if err := json.Unmarshal(r.NotAvailable, &raw); err != nil {
		return nil, err
	}
	days := make([]string, 0, len(raw))
	for _, v := range raw {
		t, err := utils.ParseBookingDate(v)
		if err != nil {
			return nil, err
		}
		days = append(days, utils.DayKey(t))
	}
	return days, nil
}

func (r *Room) setReservedDays(days []string) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	r.NotAvailable = datatypes.JSON(raw)
	return nil
}

// ConflictingDays returns the subset of the given day keys already present
// in the ledger.
func (r *Room) ConflictingDays(days []string) ([]string, error) {
	reserved, err := r.ReservedDays()
	if err != nil {
		return nil, err
	}
	held := make(map[string]struct{}, len(reserved))
	for _, d := range reserved {
		held[d] = struct{}{}
	}
	var conflicts []string
	for _, d := range days {
		if _, ok := held[d]; ok {
			conflicts = append(conflicts, d)
		}
	}
	return conflicts, nil
}

// Reserve appends the given day keys to the ledger. The caller must have
// already confirmed none of them conflict (ConflictingDays under the same
// room lock); Reserve itself does not re-check.
func (r *Room) Reserve(days []string) error {
	reserved, err := r.ReservedDays()
	if err != nil {
		return err
	}
	return r.setReservedDays(append(reserved, days...))
}

// Release removes the given day keys from the ledger. Days not present are
// ignored, so releasing is tolerant of repeated calls.
func (r *Room) Release(days []string) error {
	reserved, err := r.ReservedDays()
	if err != nil {
		return err
	}
	drop := make(map[string]struct{}, len(days))
	for _, d := range days {
		drop[d] = struct{}{}
	}
	kept := make([]string, 0, len(reserved))
	for _, d := range reserved {
		if _, ok := drop[d]; !ok {
			kept = append(kept, d)
		}
	}
	return r.setReservedDays(kept)
}
