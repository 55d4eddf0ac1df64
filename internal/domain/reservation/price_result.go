package reservation

import (
	"context"

	"hotel-pricing/internal/domain/pricing"
)

// RoomPriceRequest is what the per-room package price lookup receives.
// AdditionalProducts repeats a code once per unit ordered.
type RoomPriceRequest struct {
	PackageCode        string   `json:"packageCode"`
	RoomCode           string   `json:"roomCode"`
	Adults             int      `json:"adults"`
	ChildrenAges       []int    `json:"childrenAges"`
	Nights             int      `json:"nights"`
	AdditionalProducts []string `json:"additionalProducts"`
}

type PricingLookup interface {
	CalculatePackagePrice(ctx context.Context, req RoomPriceRequest) (*PriceResult, error)
}

type PriceBreakdownItem struct {
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	Category      string        `json:"category,omitempty"`
	IsIncluded    bool          `json:"isIncluded"`
	PerPerson     bool          `json:"perPerson"`
	AdultsPrice   pricing.Money `json:"adultsPrice"`
	ChildrenPrice pricing.Money `json:"childrenPrice"`
	Total         pricing.Money `json:"total"`
	RoomLabel     string        `json:"roomLabel,omitempty"`
}

type PriceResult struct {
	GrandTotal     pricing.Money        `json:"grandTotal"`
	Breakdown      []PriceBreakdownItem `json:"breakdown"`
	RoomCount      int                  `json:"roomCount"`
	PerRoomAverage pricing.Money        `json:"perRoomAverage"`

	RoomTotal       pricing.Money `json:"roomTotal"`
	PackageTotal    pricing.Money `json:"packageTotal"`
	AdditionalTotal pricing.Money `json:"additionalTotal"`
	Nights          int           `json:"nights"`
	DailyAverage    pricing.Money `json:"dailyAverage"`
}
