package components

import (
	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	"hotel-pricing/internal/pkg/clock"
	"hotel-pricing/internal/pkg/config"
	"hotel-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	NewTaxDecomposer,
	pricing.NewComposer,
	NewAggregator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCheckoutQueries,
		queries.NewReservationQuoteQueries,
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewSystemClock(clock.LoadLocation(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
}

func NewTaxDecomposer(cfg config.Config) (*pricing.TaxDecomposer, error) {
	return pricing.NewTaxDecomposer(cfg.Pricing.TaxRate)
}

func NewAggregator(lookup reservation.PricingLookup, cfg config.Config) *reservation.Aggregator {
	return reservation.NewAggregator(lookup, cfg.Pricing.LookupConcurrency)
}
