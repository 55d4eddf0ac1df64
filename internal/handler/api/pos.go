package api

import (
	"net/http"

	reqdto "hotel-pricing/internal/handler/dto/request"
	resdto "hotel-pricing/internal/handler/dto/response"
	"hotel-pricing/internal/handler/httperr"
	"hotel-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type POSHandler struct {
	q queries.CheckoutQueries
}

func NewPOSHandler(q queries.CheckoutQueries) *POSHandler {
	return &POSHandler{q: q}
}

// @Summary Compute checkout totals
// @Description Tax-inclusive totals for a reception or restaurant ticket, with line and order adjustments
// @Tags pos
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutTotalsRequest true "Cart"
// @Success 200 {object} resdto.CheckoutTotalsResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/pos/totals [post]
func (h *POSHandler) ComputeTotals(c *gin.Context) {
	var req reqdto.CheckoutTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	order, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to read cart")
		return
	}
	view, err := h.q.ComputeTotals(c.Request.Context(), order)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutTotalsView(view))
}
