package request

import (
	"strings"
	"time"

	"hotel-pricing/internal/domain/allocation"
	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/pkg/errs"
	"hotel-pricing/internal/usecase/queries"
)

type AllocationRequest struct {
	Adults       int   `json:"adults"`
	Children     int   `json:"children"`
	ChildrenAges []int `json:"childrenAges"`
	RoomCount    int   `json:"roomCount" binding:"max=50"`
}

func (r AllocationRequest) ToDomain() allocation.GuestParty {
	return allocation.GuestParty{
		Adults:    r.Adults,
		Children:  r.Children,
		ChildAges: r.ChildrenAges,
	}
}

type RoomRequest struct {
	Code   string `json:"code"`
	Number string `json:"number"`
}

type ProductSelectionRequest struct {
	Code     string `json:"code" binding:"required"`
	Quantity int    `json:"quantity" binding:"max=100"`
}

type QuoteRequest struct {
	PackageCode        string                    `json:"packageCode"`
	Rooms              []RoomRequest             `json:"rooms"`
	RoomCode           string                    `json:"roomCode,omitempty"`
	CheckIn            string                    `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut           string                    `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Adults             int                       `json:"adults"`
	Children           int                       `json:"children"`
	ChildrenAges       []int                     `json:"childrenAges"`
	AdditionalProducts []string                  `json:"additionalProducts"`
	SpaProducts        []ProductSelectionRequest `json:"spaProducts" binding:"dive"`
	FoodProducts       []ProductSelectionRequest `json:"foodProducts" binding:"dive"`
	Discount           *AdjustmentRequest        `json:"discount,omitempty"`
	Surcharge          *AdjustmentRequest        `json:"surcharge,omitempty"`
}

func (r QuoteRequest) ToDomain() (queries.QuoteInput, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return queries.QuoteInput{}, errs.Invalid("checkIn: %v", err)
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return queries.QuoteInput{}, errs.Invalid("checkOut: %v", err)
	}

	rooms := make([]reservation.Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, reservation.Room{
			Code:   strings.TrimSpace(room.Code),
			Number: strings.TrimSpace(room.Number),
		})
	}
	if len(rooms) == 0 && r.RoomCode != "" {
		rooms = append(rooms, reservation.Room{Code: strings.TrimSpace(r.RoomCode)})
	}

	products, err := reservation.ExpandProducts(r.AdditionalProducts,
		toSelections(r.SpaProducts),
		toSelections(r.FoodProducts),
	)
	if err != nil {
		return queries.QuoteInput{}, err
	}

	discount, err := r.Discount.ToDiscount()
	if err != nil {
		return queries.QuoteInput{}, err
	}
	surcharge, err := r.Surcharge.ToSurcharge()
	if err != nil {
		return queries.QuoteInput{}, err
	}

	return queries.QuoteInput{
		PackageCode: strings.TrimSpace(r.PackageCode),
		Rooms:       rooms,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Party: allocation.GuestParty{
			Adults:    r.Adults,
			Children:  r.Children,
			ChildAges: r.ChildrenAges,
		},
		AdditionalProducts: products,
		Discount:           discount,
		Surcharge:          surcharge,
	}, nil
}

type PackageQuotesRequest struct {
	QuoteRequest
	PackageCodes []string `json:"packageCodes" binding:"required,min=1,dive,required"`
}

func toSelections(in []ProductSelectionRequest) []reservation.ProductSelection {
	out := make([]reservation.ProductSelection, len(in))
	for i, p := range in {
		out[i] = reservation.ProductSelection{Code: strings.TrimSpace(p.Code), Quantity: p.Quantity}
	}
	return out
}
