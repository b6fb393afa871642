package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	custdomain "loanbook/internal/domain/customer"
	customeruc "loanbook/internal/usecase/customer"
	loanuc "loanbook/internal/usecase/loan"
)

type CustomerHandler struct {
	customers *customeruc.Usecase
	loans     *loanuc.Usecase
}

func NewCustomerHandler(customers *customeruc.Usecase, loans *loanuc.Usecase) *CustomerHandler {
	return &CustomerHandler{customers: customers, loans: loans}
}

type createCustomerReq struct {
	CustomerID string `json:"customer_id" validate:"required,max=64"`
	Name       string `json:"name"        validate:"required,max=255"`
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.customers.Create(c.Request().Context(), customeruc.CreateCustomerInput(req))
	if err != nil {
		if errors.Is(err, custdomain.ErrDuplicateID) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) Overview(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing customer_id path param"})
	}
	dto, err := h.loans.Overview(c.Request().Context(), customerID)
	if err != nil {
		if errors.Is(err, custdomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(http.StatusOK, dto)
}
