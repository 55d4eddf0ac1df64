package response

import (
	"time"

	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomAllocationResponse struct {
	Room         int    `json:"room"`
	RoomCode     string `json:"roomCode,omitempty"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	ChildrenAges []int  `json:"childrenAges"`
}

type QuoteResponse struct {
	ID              uuid.UUID                `json:"id"`
	PackageCode     string                   `json:"packageCode"`
	Nights          int                      `json:"nights"`
	Allocations     []RoomAllocationResponse `json:"allocations"`
	Pricing         *reservation.PriceResult `json:"pricing"`
	Subtotal        int64                    `json:"subtotal"`
	DiscountAmount  int64                    `json:"discountAmount"`
	SurchargeAmount int64                    `json:"surchargeAmount"`
	FinalTotal      int64                    `json:"finalTotal"`
	QuotedAt        time.Time                `json:"quotedAt"`
}

type PackageQuoteResponse struct {
	PackageCode string `json:"packageCode"`
	GrandTotal  int64  `json:"grandTotal"`
	RoomCount   int    `json:"roomCount"`
	Error       string `json:"error,omitempty"`
}

func FromRoomAllocationViews(vs []queries.RoomAllocationView) []RoomAllocationResponse {
	out := make([]RoomAllocationResponse, len(vs))
	for i, v := range vs {
		out[i] = RoomAllocationResponse{
			Room:         v.Room,
			RoomCode:     v.RoomCode,
			Adults:       v.Adults,
			Children:     v.Children,
			ChildrenAges: v.ChildrenAges,
		}
	}
	return out
}

func FromReservationQuoteView(v *queries.ReservationQuoteView) *QuoteResponse {
	return &QuoteResponse{
		ID:              v.ID,
		PackageCode:     v.PackageCode,
		Nights:          v.Nights,
		Allocations:     FromRoomAllocationViews(v.Allocations),
		Pricing:         v.Pricing,
		Subtotal:        v.Subtotal.Int64(),
		DiscountAmount:  v.DiscountAmount.Int64(),
		SurchargeAmount: v.SurchargeAmount.Int64(),
		FinalTotal:      v.FinalTotal.Int64(),
		QuotedAt:        v.QuotedAt,
	}
}

func FromPackageQuoteViews(vs []*queries.PackageQuoteView) []PackageQuoteResponse {
	out := make([]PackageQuoteResponse, len(vs))
	for i, v := range vs {
		out[i] = PackageQuoteResponse{
			PackageCode: v.PackageCode,
			GrandTotal:  v.GrandTotal.Int64(),
			RoomCount:   v.RoomCount,
			Error:       v.Error,
		}
	}
	return out
}
