//go:build e2e

package quote_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-pricing/internal/domain/pricing"
	"hotel-pricing/internal/domain/reservation"
	reqdto "hotel-pricing/internal/handler/dto/request"
	"hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/infra/readstore"
	"hotel-pricing/tests/common/builder"
	"hotel-pricing/tests/common/dbtest"
	"hotel-pricing/tests/common/httptest"
	"hotel-pricing/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL         = "/api/reservations/quote"
	packageQuotesURL = "/api/reservations/package-quotes"
	allocationsURL   = "/api/reservations/allocations"
	posTotalsURL     = "/api/pos/totals"
)

type QuoteSuite struct {
	e2e.SharedSuite
}

func (s *QuoteSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuoteSuite))
}

// =============================================================================
// TestQuote - multi-room package quote
// =============================================================================

func (s *QuoteSuite) TestQuote() {
	s.Run("Normal case: two rooms priced through the database function", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody)

		var got response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, 2, got.Nights)
		// room 101: 2 adults + child 8 -> 120000 room, 50000 breakfast, 100000 dinner
		// room 102: 1 adult            -> 100000 room, 20000 breakfast,  40000 dinner
		require.Equal(t, int64(430000), got.Subtotal)
		require.Equal(t, int64(430000), got.FinalTotal)
		require.Equal(t, pricing.Money(220000), got.Pricing.RoomTotal)
		require.Equal(t, pricing.Money(210000), got.Pricing.PackageTotal)
		require.Equal(t, pricing.Money(215000), got.Pricing.PerRoomAverage)
		require.Equal(t, pricing.Money(215000), got.Pricing.DailyAverage)

		wantAlloc := []response.RoomAllocationResponse{
			{Room: 0, RoomCode: "habitacion_101", Adults: 2, Children: 1, ChildrenAges: []int{8}},
			{Room: 1, RoomCode: "habitacion_102", Adults: 1, Children: 0, ChildrenAges: []int{}},
		}
		if diff := cmp.Diff(wantAlloc, got.Allocations); diff != "" {
			t.Errorf("allocations mismatch (-want +got):\n%s", diff)
		}

		wantBreakdown := []reservation.PriceBreakdownItem{
			{Code: "habitacion_101", Name: "Room 101", Category: "alojamiento", IsIncluded: true, AdultsPrice: 120000, Total: 120000, RoomLabel: "Room 101"},
			{Code: "cena", Name: "Dinner", Category: "comida", IsIncluded: true, PerPerson: true, AdultsPrice: 80000, ChildrenPrice: 20000, Total: 100000, RoomLabel: "Room 101"},
			{Code: "desayuno", Name: "Breakfast", Category: "comida", IsIncluded: true, PerPerson: true, AdultsPrice: 40000, ChildrenPrice: 10000, Total: 50000, RoomLabel: "Room 101"},
			{Code: "habitacion_102", Name: "Room 102", Category: "alojamiento", IsIncluded: true, AdultsPrice: 100000, Total: 100000, RoomLabel: "Room 102"},
			{Code: "cena", Name: "Dinner", Category: "comida", IsIncluded: true, PerPerson: true, AdultsPrice: 40000, Total: 40000, RoomLabel: "Room 102"},
			{Code: "desayuno", Name: "Breakfast", Category: "comida", IsIncluded: true, PerPerson: true, AdultsPrice: 20000, Total: 20000, RoomLabel: "Room 102"},
		}
		if diff := cmp.Diff(wantBreakdown, got.Pricing.Breakdown); diff != "" {
			t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: spa products are expanded and charged per room", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.Spa = []reqdto.ProductSelectionRequest{{Code: "masaje", Quantity: 2}}
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody)

		var got response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, pricing.Money(140000), got.Pricing.AdditionalTotal)
		require.Equal(t, int64(570000), got.Subtotal)
	})

	s.Run("Normal case: reservation discount and surcharge", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().BuildRequestDTO()
		reqBody.Discount = &reqdto.AdjustmentRequest{Type: "percentage", Value: decimal.NewFromInt(10)}
		reqBody.Surcharge = &reqdto.AdjustmentRequest{Type: "fixed_amount", Value: decimal.NewFromInt(5000)}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody)

		var got response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, int64(43000), got.DiscountAmount)
		require.Equal(t, int64(5000), got.SurchargeAmount)
		require.Equal(t, int64(392000), got.FinalTotal)
	})

	s.Run("Abnormal case: unknown package returns 404", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.PackageCode = "PENSION_COMPLETA"
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})

	s.Run("Abnormal case: unknown room returns 404", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.Rooms = []reqdto.RoomRequest{{Number: "999"}}
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("Abnormal case: check-out on check-in day returns 422", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.CheckOut = b.CheckIn
		}).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")
	})
}

// =============================================================================
// TestComparePackages - one entry per package, failures isolated
// =============================================================================

func (s *QuoteSuite) TestComparePackages() {
	s.Run("Normal case: unknown package is reported without failing the rest", func() {
		t := s.T()
		reqBody := builder.NewQuoteBuilder().BuildPackageQuotesRequestDTO("MEDIA_PENSION", "SOLO_ALOJAMIENTO", "NOPE")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, packageQuotesURL, reqBody)

		var got []response.PackageQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := []response.PackageQuoteResponse{
			{PackageCode: "MEDIA_PENSION", GrandTotal: 430000, RoomCount: 2},
			{PackageCode: "SOLO_ALOJAMIENTO", GrandTotal: 220000, RoomCount: 2},
			{PackageCode: "NOPE", RoomCount: 2},
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(response.PackageQuoteResponse{}, "Error")); diff != "" {
			t.Errorf("package quotes mismatch (-want +got):\n%s", diff)
		}
		require.Empty(t, got[0].Error)
		require.NotEmpty(t, got[2].Error)
	})

	s.Run("Normal case: catalog changes are picked up", func() {
		t := s.T()
		dbtest.CreateTestProduct(t, s.DB, "almuerzo", "Lunch", "comida", 15000, 7500, true)
		dbtest.CreateTestPackage(t, s.DB, "PENSION_COMPLETA", "Full board", "desayuno", "almuerzo", "cena")
		reqBody := builder.NewQuoteBuilder().BuildPackageQuotesRequestDTO("PENSION_COMPLETA")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, packageQuotesURL, reqBody)

		var got []response.PackageQuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got, 1)
		// lunch adds 2*15000*2 + 7500*2 = 75000 to room 101 and 30000 to room 102
		require.Equal(t, int64(535000), got[0].GrandTotal)
	})
}

// =============================================================================
// TestAllocations / TestPOSTotals - no database involved, full HTTP stack
// =============================================================================

func (s *QuoteSuite) TestAllocations() {
	s.Run("Normal case: scenario with three rooms", func() {
		t := s.T()
		reqBody := reqdto.AllocationRequest{Adults: 4, Children: 3, ChildrenAges: []int{3, 6, 10}, RoomCount: 3}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, allocationsURL, reqBody)

		var got []response.RoomAllocationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		want := []response.RoomAllocationResponse{
			{Room: 0, Adults: 2, Children: 1, ChildrenAges: []int{3}},
			{Room: 1, Adults: 1, Children: 1, ChildrenAges: []int{6}},
			{Room: 2, Adults: 1, Children: 1, ChildrenAges: []int{10}},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("allocations mismatch (-want +got):\n%s", diff)
		}
	})
}

func (s *QuoteSuite) TestPOSTotals() {
	s.Run("Normal case: restaurant ticket", func() {
		t := s.T()
		reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, posTotalsURL, reqBody)

		var got response.CheckoutTotalsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, int64(21000), got.FinalTotal)
		require.Equal(t, got.GrandTotalBeforeAdjustment, got.SubtotalAfterDiscountNet+got.TaxAmount)
		require.Equal(t, "Discount applied to Lunch", got.DiscountReason)
	})
}

// =============================================================================
// TestReadStore - the pgx readstore against the real function
// =============================================================================

func (s *QuoteSuite) TestReadStore() {
	s.Run("Normal case: children under three are free", func() {
		t := s.T()
		store := readstore.NewPackagePriceReadStore(s.DB)

		res, err := store.CalculatePackagePrice(context.Background(), reservation.RoomPriceRequest{
			PackageCode:  "MEDIA_PENSION",
			RoomCode:     "habitacion_102",
			Adults:       1,
			ChildrenAges: []int{1, 14},
			Nights:       1,
		})

		require.NoError(t, err)
		// the 14 year old pays as an adult, the toddler is free
		require.Equal(t, pricing.Money(50000+2*10000+2*20000), res.GrandTotal)
	})
}
