package api

import (
	"net/http"

	reqdto "hotel-pricing/internal/handler/dto/request"
	resdto "hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/handler/httperr"
	"hotel-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationQuoteHandler struct {
	q queries.ReservationQuoteQueries
}

func NewReservationQuoteHandler(q queries.ReservationQuoteQueries) *ReservationQuoteHandler {
	return &ReservationQuoteHandler{q: q}
}

// @Summary Allocate guests to rooms
// @Description Split adults and children across the selected number of rooms
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.AllocationRequest true "Guest party"
// @Success 200 {array} resdto.RoomAllocationResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/reservations/allocations [post]
func (h *ReservationQuoteHandler) Allocate(c *gin.Context) {
	var req reqdto.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	views, err := h.q.Allocate(c.Request.Context(), req.ToDomain(), req.RoomCount)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Allocation failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomAllocationViews(views))
}

// @Summary Quote a reservation
// @Description Price a package across one or more rooms, then apply the reservation discount and surcharge
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/reservations/quote [post]
func (h *ReservationQuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid quote request")
		return
	}
	view, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationQuoteView(view))
}

// @Summary Compare packages
// @Description Price the same stay under several packages; a failing package is reported in its own entry
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.PackageQuotesRequest true "Package comparison request"
// @Success 200 {array} resdto.PackageQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/reservations/package-quotes [post]
func (h *ReservationQuoteHandler) ComparePackages(c *gin.Context) {
	var req reqdto.PackageQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Invalid quote request")
		return
	}
	views, err := h.q.ComparePackages(c.Request.Context(), in, req.PackageCodes)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Package comparison failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageQuoteViews(views))
}
