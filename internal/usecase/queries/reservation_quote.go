package queries

import (
	"context"
	"log/slog"
	"time"

	"hotel-pricing/internal/domain/allocation"
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/pkg/clock"

	"github.com/google/uuid"
)

type QuoteInput struct {
	PackageCode        string
	Rooms              []reservation.Room
	CheckIn            time.Time
	CheckOut           time.Time
	Party              allocation.GuestParty
	AdditionalProducts []string
	Discount           pricing.Adjustment
	Surcharge          pricing.Adjustment
}

type RoomAllocationView struct {
	Room         int    `json:"room"`
	RoomCode     string `json:"room_code,omitempty"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	ChildrenAges []int  `json:"children_ages"`
}

type ReservationQuoteView struct {
	ID              uuid.UUID                `json:"id"`
	PackageCode     string                   `json:"package_code"`
	Nights          int                      `json:"nights"`
	Allocations     []RoomAllocationView     `json:"allocations"`
	Pricing         *reservation.PriceResult `json:"pricing"`
	Subtotal        pricing.Money            `json:"subtotal"`
	DiscountAmount  pricing.Money            `json:"discount_amount"`
	SurchargeAmount pricing.Money            `json:"surcharge_amount"`
	FinalTotal      pricing.Money            `json:"final_total"`
	QuotedAt        time.Time                `json:"quoted_at"`
}

type PackageQuoteView struct {
	PackageCode string        `json:"package_code"`
	GrandTotal  pricing.Money `json:"grand_total"`
	RoomCount   int           `json:"room_count"`
	Error       string        `json:"error,omitempty"`
}

type ReservationQuoteQueries interface {
	Allocate(ctx context.Context, party allocation.GuestParty, roomCount int) ([]RoomAllocationView, error)
	Quote(ctx context.Context, in QuoteInput) (*ReservationQuoteView, error)
	ComparePackages(ctx context.Context, in QuoteInput, packageCodes []string) ([]*PackageQuoteView, error)
}

type reservationQuoteQueriesImpl struct {
	aggregator *reservation.Aggregator
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReservationQuoteQueries(aggregator *reservation.Aggregator, clk clock.Clock, logger *slog.Logger) ReservationQuoteQueries {
	return &reservationQuoteQueriesImpl{
		aggregator: aggregator,
		clock:      clk,
		logger:     logger,
	}
}

func (q *reservationQuoteQueriesImpl) Allocate(_ context.Context, party allocation.GuestParty, roomCount int) ([]RoomAllocationView, error) {
	allocs, err := allocation.Allocate(party, roomCount)
	if err != nil {
		return nil, err
	}

	views := make([]RoomAllocationView, len(allocs))
	for i, a := range allocs {
		views[i] = toRoomAllocationView(a, "")
	}
	return views, nil
}

func (q *reservationQuoteQueriesImpl) Quote(ctx context.Context, in QuoteInput) (*ReservationQuoteView, error) {
	rooms, stay, err := q.prepare(in, in.PackageCode)
	if err != nil {
		return nil, err
	}

	priced, err := q.aggregator.Aggregate(ctx, rooms, stay)
	if err != nil {
		return nil, err
	}

	adj, err := reservation.TotalWithAdjustments(priced, in.Discount, in.Surcharge)
	if err != nil {
		return nil, err
	}

	allocations := make([]RoomAllocationView, len(rooms))
	for i, r := range rooms {
		allocations[i] = toRoomAllocationView(r.Allocation, r.Room.LookupCode())
	}

	return &ReservationQuoteView{
		ID:              uuid.New(),
		PackageCode:     stay.PackageCode,
		Nights:          stay.Nights,
		Allocations:     allocations,
		Pricing:         priced,
		Subtotal:        priced.GrandTotal,
		DiscountAmount:  adj.DiscountAmount,
		SurchargeAmount: adj.SurchargeAmount,
		FinalTotal:      adj.FinalTotal,
		QuotedAt:        q.clock.Now(),
	}, nil
}

// ComparePackages prices the same stay under each package. A package that
// fails to price is reported in its own entry and does not fail the others.
func (q *reservationQuoteQueriesImpl) ComparePackages(ctx context.Context, in QuoteInput, packageCodes []string) ([]*PackageQuoteView, error) {
	out := make([]*PackageQuoteView, 0, len(packageCodes))
	for _, code := range packageCodes {
		rooms, stay, err := q.prepare(in, code)
		if err != nil {
			return nil, err
		}

		view := &PackageQuoteView{PackageCode: code, RoomCount: len(rooms)}
		priced, err := q.aggregator.Aggregate(ctx, rooms, stay)
		if err != nil {
			q.logger.WarnContext(ctx, "package price comparison failed",
				slog.String("package_code", code),
				slog.String("error", err.Error()),
			)
			view.Error = err.Error()
		} else {
			view.GrandTotal = priced.GrandTotal
		}
		out = append(out, view)
	}
	return out, nil
}

func (q *reservationQuoteQueriesImpl) prepare(in QuoteInput, packageCode string) ([]reservation.RoomAssignment, reservation.Stay, error) {
	nights, err := reservation.NightsBetween(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, reservation.Stay{}, err
	}

	stay := reservation.Stay{
		PackageCode:        packageCode,
		Nights:             nights,
		AdditionalProducts: in.AdditionalProducts,
	}
	if err := stay.Validate(); err != nil {
		return nil, reservation.Stay{}, err
	}

	rooms, err := reservation.Assign(in.Rooms, in.Party)
	if err != nil {
		return nil, reservation.Stay{}, err
	}
	return rooms, stay, nil
}

func toRoomAllocationView(a allocation.RoomAllocation, roomCode string) RoomAllocationView {
	return RoomAllocationView{
		Room:         a.Room,
		RoomCode:     roomCode,
		Adults:       a.Adults,
		Children:     a.Children,
		ChildrenAges: a.ChildAges,
	}
}
