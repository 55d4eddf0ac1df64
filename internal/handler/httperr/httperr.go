package httperr

import (
	"net/http"

	"hotel-pricing/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the logging middleware and
// writes the error envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps pricing, allocation and lookup errors to a status and a
// client-facing message. Input errors echo their own message; anything
// unrecognized gets fallbackMsg with a 500.
func StatusFor(err error, fallbackMsg string) (int, string) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation),
		errs.Is(err, errs.ErrAllocation),
		errs.Is(err, errs.ErrInvalidStay):
		return http.StatusUnprocessableEntity, err.Error()
	case errs.Is(err, errs.ErrPackageNotFound):
		return http.StatusNotFound, "Package price not found"
	case errs.Is(err, errs.ErrPricingLookup):
		return http.StatusBadGateway, "Price lookup failed"
	default:
		return http.StatusInternalServerError, fallbackMsg
	}
}

func AbortWithDomainError(c *gin.Context, err error, fallbackMsg string) {
	status, msg := StatusFor(err, fallbackMsg)
	AbortWithError(c, status, err, msg, nil)
}
