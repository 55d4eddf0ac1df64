package reservation

import (
	"fmt"
	"math"
	"time"

	"hotel-pricing/internal/domain/allocation"
	"hotel-pricing/internal/pkg/errs"
)

type Room struct {
	Code   string
	Number string
}

// LookupCode falls back to the legacy "habitacion_<number>" product code.
func (r Room) LookupCode() string {
	if r.Code != "" {
		return r.Code
	}
	return "habitacion_" + r.Number
}

func (r Room) Label(position int) string {
	if r.Number != "" {
		return "Room " + r.Number
	}
	return fmt.Sprintf("Room %d", position+1)
}

type RoomAssignment struct {
	Room       Room
	Allocation allocation.RoomAllocation
}

// Assign allocates the party across rooms in selection order.
func Assign(rooms []Room, party allocation.GuestParty) ([]RoomAssignment, error) {
	allocs, err := allocation.Allocate(party, len(rooms))
	if err != nil {
		return nil, err
	}
	out := make([]RoomAssignment, len(rooms))
	for i, room := range rooms {
		out[i] = RoomAssignment{Room: room, Allocation: allocs[i]}
	}
	return out, nil
}

// Stay carries the inputs shared by every room of one reservation.
type Stay struct {
	PackageCode        string
	Nights             int
	AdditionalProducts []string
}

func (s Stay) Validate() error {
	if s.PackageCode == "" {
		return errs.Invalid("package code is required")
	}
	if s.Nights < 1 {
		return errs.Wrapf(errs.ErrInvalidStay, "stay must last at least one night, got %d", s.Nights)
	}
	return nil
}

// NightsBetween counts started days between check-in and check-out.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	days := checkOut.Sub(checkIn).Hours() / 24
	nights := int(math.Ceil(days))
	if nights <= 0 {
		return 0, errs.Wrapf(errs.ErrInvalidStay, "check-out %s must be after check-in %s",
			checkOut.Format(time.DateOnly), checkIn.Format(time.DateOnly))
	}
	return nights, nil
}

type ProductSelection struct {
	Code     string
	Quantity int
}

// MaxProductQuantity caps a single spa or food selection.
const MaxProductQuantity = 100

// ExpandProducts flattens selections into repeated codes, appended after
// the plain codes in argument order.
func ExpandProducts(codes []string, selections ...[]ProductSelection) ([]string, error) {
	out := append([]string{}, codes...)
	for _, group := range selections {
		for _, sel := range group {
			if sel.Quantity < 0 {
				return nil, errs.Invalid("product %q has a negative quantity", sel.Code)
			}
			if sel.Quantity > MaxProductQuantity {
				return nil, errs.Invalid("product %q quantity cannot exceed %d, got %d", sel.Code, MaxProductQuantity, sel.Quantity)
			}
			for range sel.Quantity {
				out = append(out, sel.Code)
			}
		}
	}
	return out, nil
}
