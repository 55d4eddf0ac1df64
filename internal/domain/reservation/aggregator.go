package reservation

import (
	"context"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Aggregator prices a multi-room reservation by calling the lookup once per
// room and summing the results.
type Aggregator struct {
	lookup      PricingLookup
	concurrency int
}

// NewAggregator runs lookups one at a time when concurrency <= 1.
func NewAggregator(lookup PricingLookup, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{lookup: lookup, concurrency: concurrency}
}

// Aggregate fails as a whole when any room fails: a partial price is never
// returned. The lookup error stays in the chain, marked with ErrPricingLookup.
func (a *Aggregator) Aggregate(ctx context.Context, rooms []RoomAssignment, stay Stay) (*PriceResult, error) {
	if len(rooms) == 0 {
		return nil, errs.Wrap(errs.ErrAllocation, "at least one room is required")
	}
	if err := stay.Validate(); err != nil {
		return nil, err
	}

	results := make([]*PriceResult, len(rooms))
	if a.concurrency == 1 {
		for i, room := range rooms {
			res, err := a.lookupRoom(ctx, room, stay)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.concurrency)
		for i, room := range rooms {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := a.lookupRoom(gctx, room, stay)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return combine(rooms, results, stay.Nights), nil
}

func (a *Aggregator) lookupRoom(ctx context.Context, room RoomAssignment, stay Stay) (*PriceResult, error) {
	code := room.Room.LookupCode()
	res, err := a.lookup.CalculatePackagePrice(ctx, RoomPriceRequest{
		PackageCode:        stay.PackageCode,
		RoomCode:           code,
		Adults:             room.Allocation.Adults,
		ChildrenAges:       room.Allocation.ChildAges,
		Nights:             stay.Nights,
		AdditionalProducts: stay.AdditionalProducts,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "price lookup for room %s", code), errs.ErrPricingLookup)
	}
	if res == nil {
		return nil, errs.Mark(errs.Newf("price lookup for room %s returned no result", code), errs.ErrPricingLookup)
	}
	return res, nil
}

func combine(rooms []RoomAssignment, results []*PriceResult, nights int) *PriceResult {
	out := &PriceResult{
		Breakdown: []PriceBreakdownItem{},
		RoomCount: len(rooms),
		Nights:    nights,
	}
	for i, res := range results {
		out.GrandTotal += res.GrandTotal
		out.RoomTotal += res.RoomTotal
		out.PackageTotal += res.PackageTotal
		out.AdditionalTotal += res.AdditionalTotal

		label := rooms[i].Room.Label(rooms[i].Allocation.Room)
		for _, item := range res.Breakdown {
			item.RoomLabel = label
			out.Breakdown = append(out.Breakdown, item)
		}
	}
	out.PerRoomAverage = out.GrandTotal.DivRound(len(rooms))
	out.DailyAverage = out.GrandTotal.DivRound(nights)
	return out
}

// TotalWithAdjustments applies the reservation-level discount and surcharge
// to an aggregated price.
func TotalWithAdjustments(res *PriceResult, discount, surcharge pricing.Adjustment) (pricing.OrderAdjustments, error) {
	if err := discount.ValidateDiscount(); err != nil {
		return pricing.OrderAdjustments{}, err
	}
	if err := surcharge.ValidateSurchargeOn(res.GrandTotal); err != nil {
		return pricing.OrderAdjustments{}, err
	}
	return pricing.ApplyOrderAdjustments(res.GrandTotal, discount, surcharge), nil
}
