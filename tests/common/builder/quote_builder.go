//go:build unit || e2e

package builder

import (
	"time"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteBuilder struct {
	PackageCode  string
	Rooms        []reqdto.RoomRequest
	CheckIn      string
	CheckOut     string
	Adults       int
	Children     int
	ChildrenAges []int
	Spa          []reqdto.ProductSelectionRequest
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		PackageCode:  "MEDIA_PENSION",
		Rooms:        []reqdto.RoomRequest{{Number: "101"}, {Number: "102"}},
		CheckIn:      "2025-03-10",
		CheckOut:     "2025-03-12",
		Adults:       3,
		Children:     1,
		ChildrenAges: []int{8},
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		PackageCode:  b.PackageCode,
		Rooms:        b.Rooms,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Adults:       b.Adults,
		Children:     b.Children,
		ChildrenAges: b.ChildrenAges,
		SpaProducts:  b.Spa,
	}
}

func (b *QuoteBuilder) BuildPackageQuotesRequestDTO(codes ...string) reqdto.PackageQuotesRequest {
	return reqdto.PackageQuotesRequest{
		QuoteRequest: b.BuildRequestDTO(),
		PackageCodes: codes,
	}
}

func (b *QuoteBuilder) BuildView() *queries.ReservationQuoteView {
	return &queries.ReservationQuoteView{
		ID:          uuid.New(),
		PackageCode: b.PackageCode,
		Nights:      2,
		Allocations: []queries.RoomAllocationView{
			{Room: 0, RoomCode: "habitacion_101", Adults: 2, Children: 1, ChildrenAges: []int{8}},
			{Room: 1, RoomCode: "habitacion_102", Adults: 1, Children: 0, ChildrenAges: []int{}},
		},
		Pricing: &reservation.PriceResult{
			GrandTotal:     300000,
			RoomCount:      2,
			PerRoomAverage: 150000,
			RoomTotal:      300000,
			Nights:         2,
			DailyAverage:   150000,
			Breakdown: []reservation.PriceBreakdownItem{
				{Code: "habitacion_101", Name: "Room", Total: 180000, RoomLabel: "Room 101"},
				{Code: "habitacion_102", Name: "Room", Total: 120000, RoomLabel: "Room 102"},
			},
		},
		Subtotal:   pricing.Money(300000),
		FinalTotal: pricing.Money(300000),
		QuotedAt:   time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}
