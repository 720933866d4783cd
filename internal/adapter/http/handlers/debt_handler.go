package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_prime/internal/adapter/http/dto/request"
	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/usecase"
	"oficina_prime/pkg"

	"github.com/gin-gonic/gin"
)

// DebtHandler handles HTTP requests for client receivables.

type DebtHandler struct {
	usecase usecase.IDebtUseCase
}

func NewDebtHandler(uc usecase.IDebtUseCase) *DebtHandler {
	return &DebtHandler{usecase: uc}
}

// GetReceivable returns the vehicle's open receivable, if any.
func (h *DebtHandler) GetReceivable(c *gin.Context) {
	rec, err := h.usecase.GetOpenByVehicleID(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapDebtError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReceivable(rec))
}

// CollectPayment charges a payment against the open receivable. With an
// `mp_payload` the charge runs through Mercado Pago first; without one it is
// recorded as an offline payment.
func (h *DebtHandler) CollectPayment(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var payload request.DebtPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[debt][handler] collect start vehicle_id=%s amount=%d method=%s", vehicleID, payload.Amount, payload.Method)

	rec, err := h.usecase.CollectPayment(c.Request.Context(), vehicleID, payload.Amount, payload.Method, payload.MPPayload)
	if err != nil {
		log.Printf("[debt][handler] collect failed vehicle_id=%s err=%v", vehicleID, err)
		appErr := mapDebtError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[debt][handler] collect success vehicle_id=%s receivable_id=%s status=%s", vehicleID, rec.ID, rec.Status)

	c.JSON(http.StatusOK, response.FromReceivable(rec))
}

func mapDebtError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidDebtTotals),
		errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReceivableNotFound):
		return pkg.NewDomainErrorSimple("RECEIVABLE_NOT_FOUND", "No open receivable for this vehicle", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment provider rejected the charge", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
