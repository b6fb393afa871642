package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	loandomain "loanbook/internal/domain/loan"
	paydomain "loanbook/internal/domain/payment"
	paymentuc "loanbook/internal/usecase/payment"
)

type PaymentHandler struct{ uc *paymentuc.Usecase }

func NewPaymentHandler(uc *paymentuc.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
}

// RecordPayment deliberately leaves amount/type/balance checks to the ledger
// core so there is exactly one place those rules live.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Record(c.Request().Context(), paymentuc.RecordPaymentInput{
		LoanID:      loanID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		switch {
		case errors.Is(err, loandomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
		case errors.Is(err, paydomain.ErrInvalidAmount),
			errors.Is(err, paydomain.ErrInvalidType),
			errors.Is(err, paydomain.ErrExceedsBalance):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
	}
	return c.JSON(http.StatusOK, dto)
}
