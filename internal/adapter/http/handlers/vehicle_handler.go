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

var (
	errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
)

// VehicleHandler handles HTTP requests for the vehicle service record:
// check-in, service lines, client payments and delivery.

type VehicleHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewVehicleHandler(uc usecase.ILedgerUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) CheckInVehicle(c *gin.Context) {
	var payload request.VehicleCheckInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v, err := h.usecase.CheckInVehicle(c.Request.Context(), payload.Plate, payload.CustomerName)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

func (h *VehicleHandler) GetVehicleRecord(c *gin.Context) {
	rec, err := h.usecase.GetVehicleRecord(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicleRecord(rec))
}

func (h *VehicleHandler) AddServiceLine(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var payload request.ServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddServiceLine(c.Request.Context(), vehicleID, payload.Name, payload.Description, payload.Price)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceLine(line))
}

func (h *VehicleHandler) StartServiceLine(c *gin.Context) {
	line, err := h.usecase.StartServiceLine(c.Request.Context(), c.Param("line_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceLine(line))
}

func (h *VehicleHandler) CompleteServiceLine(c *gin.Context) {
	line, err := h.usecase.CompleteServiceLine(c.Request.Context(), c.Param("line_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceLine(line))
}

// RecordClientPayment books a payment received directly from the client
// against the vehicle record.
func (h *VehicleHandler) RecordClientPayment(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var payload request.ClientPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}
	log.Printf("[vehicle][handler] client payment vehicle_id=%s amount=%d", vehicleID, payload.Amount)

	v, err := h.usecase.RecordClientPayment(c.Request.Context(), vehicleID, payload.Amount)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) DeliverVehicle(c *gin.Context) {
	v, err := h.usecase.DeliverVehicle(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidPlate),
		errors.Is(err, usecase.ErrInvalidLineID),
		errors.Is(err, usecase.ErrInvalidLineName),
		errors.Is(err, usecase.ErrInvalidLinePrice),
		errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceLineNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_LINE_NOT_FOUND", "Service line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineNotCompletable):
		return pkg.NewDomainErrorSimple("LINE_NOT_COMPLETABLE", "Service line cannot transition from its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrVehicleNotDeliverable):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_DELIVERABLE", "Vehicle must be completed and fully paid before delivery", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
