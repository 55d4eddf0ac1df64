package allocation

import (
	"hotel-pricing/internal/pkg/errs"
)

// MaxRooms is the largest selection a single reservation can span.
const MaxRooms = 50

type RoomAllocation struct {
	Room      int // position in the user's selection, zero-based
	Adults    int
	Children  int
	ChildAges []int
}

// Allocate splits a party evenly across roomCount rooms. Remainders go to the
// first rooms in selection order, and ages are handed out with one cursor
// shared by all rooms, so concatenating the rooms' ages gives back the
// party's list. More rooms than guests is fine: the extra rooms stay empty.
//
// The result depends only on the arguments. Callers recompute it whenever
// the room selection changes rather than patching an earlier result.
func Allocate(party GuestParty, roomCount int) ([]RoomAllocation, error) {
	if roomCount < 1 {
		return nil, errs.Wrapf(errs.ErrAllocation, "room count must be at least 1, got %d", roomCount)
	}
	if roomCount > MaxRooms {
		return nil, errs.Wrapf(errs.ErrAllocation, "room count cannot exceed %d, got %d", MaxRooms, roomCount)
	}
	if err := party.Validate(); err != nil {
		return nil, err
	}
	return distribute(party, roomCount), nil
}

func distribute(party GuestParty, roomCount int) []RoomAllocation {
	adultsPerRoom, extraAdults := party.Adults/roomCount, party.Adults%roomCount
	childrenPerRoom, extraChildren := party.Children/roomCount, party.Children%roomCount

	rooms := make([]RoomAllocation, roomCount)
	cursor := 0
	for i := range rooms {
		adults := adultsPerRoom
		if i < extraAdults {
			adults++
		}
		children := childrenPerRoom
		if i < extraChildren {
			children++
		}

		ages := make([]int, 0, children)
		for range children {
			if cursor < len(party.ChildAges) {
				ages = append(ages, party.ChildAges[cursor])
				cursor++
			} else {
				ages = append(ages, DefaultChildAge)
			}
		}

		rooms[i] = RoomAllocation{
			Room:      i,
			Adults:    adults,
			Children:  children,
			ChildAges: ages,
		}
	}
	return rooms
}
