package readstore

import (
	"context"
	"encoding/json"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/infra"
	"hotel-pricing/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const calculatePackagePriceModular = `SELECT calculate_package_price_modular($1, $2, $3, $4, $5, $6)`

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PackagePriceReadStore struct {
	db DBTX
}

func NewPackagePriceReadStore(db DBTX) *PackagePriceReadStore {
	return &PackagePriceReadStore{db: db}
}

func (r *PackagePriceReadStore) CalculatePackagePrice(ctx context.Context, req reservation.RoomPriceRequest) (*reservation.PriceResult, error) {
	ages := req.ChildrenAges
	if ages == nil {
		ages = []int{}
	}
	products := req.AdditionalProducts
	if products == nil {
		products = []string{}
	}

	var raw []byte
	err := r.db.QueryRow(ctx, calculatePackagePriceModular,
		req.PackageCode, req.RoomCode, req.Adults, ages, req.Nights, products,
	).Scan(&raw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to calculate package price", err)
	}
	if raw == nil {
		return nil, errs.Mark(
			infra.WrapRepoErr("package price not found", errs.Newf("package %q room %q", req.PackageCode, req.RoomCode), infra.KindNotFound),
			errs.ErrPackageNotFound,
		)
	}

	var row packagePriceRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to decode package price", err, infra.KindDecodeFailed)
	}
	return toPriceResultFromRow(row), nil
}

type packagePriceRow struct {
	RoomTotal       decimal.Decimal `json:"room_total"`
	PackageTotal    decimal.Decimal `json:"package_total"`
	AdditionalTotal decimal.Decimal `json:"additional_total"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	Nights          int             `json:"nights"`
	DailyAverage    decimal.Decimal `json:"daily_average"`
	Breakdown       []struct {
		Code          string          `json:"code"`
		Name          string          `json:"name"`
		Category      string          `json:"category"`
		Total         decimal.Decimal `json:"total"`
		AdultsPrice   decimal.Decimal `json:"adults_price"`
		ChildrenPrice decimal.Decimal `json:"children_price"`
		PerPerson     bool            `json:"per_person"`
		IsIncluded    bool            `json:"is_included"`
	} `json:"breakdown"`
}

func toPriceResultFromRow(row packagePriceRow) *reservation.PriceResult {
	breakdown := make([]reservation.PriceBreakdownItem, 0, len(row.Breakdown))
	for _, b := range row.Breakdown {
		breakdown = append(breakdown, reservation.PriceBreakdownItem{
			Code:          b.Code,
			Name:          b.Name,
			Category:      b.Category,
			IsIncluded:    b.IsIncluded,
			PerPerson:     b.PerPerson,
			AdultsPrice:   pricing.MoneyFromDecimal(b.AdultsPrice),
			ChildrenPrice: pricing.MoneyFromDecimal(b.ChildrenPrice),
			Total:         pricing.MoneyFromDecimal(b.Total),
		})
	}

	grand := pricing.MoneyFromDecimal(row.GrandTotal)
	roomTotal := pricing.MoneyFromDecimal(row.RoomTotal)
	if roomTotal == 0 {
		roomTotal = grand
	}

	return &reservation.PriceResult{
		GrandTotal:      grand,
		Breakdown:       breakdown,
		RoomCount:       1,
		PerRoomAverage:  grand,
		RoomTotal:       roomTotal,
		PackageTotal:    pricing.MoneyFromDecimal(row.PackageTotal),
		AdditionalTotal: pricing.MoneyFromDecimal(row.AdditionalTotal),
		Nights:          row.Nights,
		DailyAverage:    pricing.MoneyFromDecimal(row.DailyAverage),
	}
}
