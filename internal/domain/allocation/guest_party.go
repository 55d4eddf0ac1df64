package allocation

import (
	"hotel-pricing/internal/pkg/errs"
)

// DefaultChildAge fills a room when the age list runs out before the room does.
const DefaultChildAge = 5

// GuestParty is the whole travelling party. ChildAges are consumed left to
// right when the party is split across rooms.
type GuestParty struct {
	Adults    int
	Children  int
	ChildAges []int
}

func NewGuestParty(adults, children int, childAges []int) (GuestParty, error) {
	p := GuestParty{Adults: adults, Children: children, ChildAges: childAges}
	if err := p.Validate(); err != nil {
		return GuestParty{}, err
	}
	return p, nil
}

func (p GuestParty) Validate() error {
	if p.Adults < 1 {
		return errs.Invalid("a party needs at least one adult, got %d", p.Adults)
	}
	if p.Children < 0 {
		return errs.Invalid("children cannot be negative, got %d", p.Children)
	}
	if len(p.ChildAges) != p.Children {
		return errs.Invalid("expected %d child ages, got %d", p.Children, len(p.ChildAges))
	}
	for i, age := range p.ChildAges {
		if age < 0 {
			return errs.Invalid("child %d has a negative age", i+1)
		}
	}
	return nil
}

func (p GuestParty) TotalGuests() int {
	return p.Adults + p.Children
}
