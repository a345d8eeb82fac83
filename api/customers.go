package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"food-api/services"
)

type customerKey struct {
	CustCode string `json:"custCode" validate:"required,len=6"`
}

type customerListResponse struct {
	CustomerList []string `json:"customerList"`
}

// ListCustomers returns the names of all customers.
// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} customerListResponse
// @Failure 500 {object} errorResponse
// @Router /customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	names, err := services.ListCustomerNames(c.Request.Context(), conn(c))
	if err != nil {
		h.serverError(c, "list customers", err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, customerListResponse{CustomerList: names})
}

// DeleteCustomer removes a customer by code.
// @Summary Delete a customer
// @Tags customers
// @Produce json
// @Param custCode path string true "Customer code (6 characters)"
// @Success 200 {object} messageResponse
// @Failure 400 {object} validationResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /customers/{custCode} [delete]
func (h *Handler) DeleteCustomer(c *gin.Context) {
	key := customerKey{CustCode: strings.TrimSpace(c.Param("custCode"))}
	if errs := checkStruct(&key); errs != nil {
		validationFailed(c, errs)
		return
	}

	err := services.DeleteCustomer(c.Request.Context(), conn(c), key.CustCode)
	switch {
	case errors.Is(err, services.ErrNotFound):
		notFound(c, "customer not found")
	case err != nil:
		h.serverError(c, "delete customer", err)
	default:
		c.JSON(http.StatusOK, messageResponse{Message: "customer deleted"})
	}
}
