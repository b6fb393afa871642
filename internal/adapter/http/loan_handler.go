package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	custdomain "loanbook/internal/domain/customer"
	loandomain "loanbook/internal/domain/loan"
	"loanbook/internal/ledger"
	loanuc "loanbook/internal/usecase/loan"
)

type LoanHandler struct{ uc *loanuc.Usecase }

func NewLoanHandler(uc *loanuc.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	CustomerID         string  `json:"customer_id"          validate:"required,max=64"`
	LoanAmount         float64 `json:"loan_amount"          validate:"required,gt=0,dec2"`
	InterestRateYearly float64 `json:"interest_rate_yearly" validate:"gte=0,dec2"`
	LoanPeriodYears    int     `json:"loan_period_years"    validate:"required,gte=1"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loanuc.CreateLoanInput(req))
	if err != nil {
		switch {
		case errors.Is(err, custdomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
		case errors.Is(err, ledger.ErrInvalidLoanParameters):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLedger(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	dto, err := h.uc.Ledger(c.Request().Context(), loanID)
	if err != nil {
		if errors.Is(err, loandomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dto)
}
