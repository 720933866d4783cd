package handlers

import (
	"errors"
	"net/http"

	request "oficina_prime/internal/adapter/http/dto/request"
	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"
	"oficina_prime/pkg"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles HTTP requests for the worker registry and the
// earnings ledger.

type ParticipantHandler struct {
	usecase usecase.IParticipantUseCase
}

func NewParticipantHandler(uc usecase.IParticipantUseCase) *ParticipantHandler {
	return &ParticipantHandler{usecase: uc}
}

func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	var payload request.ParticipantCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PARTICIPANT_INPUT", "Invalid participant payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateParticipant(c.Request.Context(), payload.Name, entities.ParticipantRole(payload.Role), payload.Percentage)
	if err != nil {
		appErr := mapParticipantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromParticipant(p))
}

func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	p, err := h.usecase.GetParticipant(c.Request.Context(), c.Param("participant_id"))
	if err != nil {
		appErr := mapParticipantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromParticipant(p))
}

// GetBalance returns the participant and their ledger-derived balance.
func (h *ParticipantHandler) GetBalance(c *gin.Context) {
	b, err := h.usecase.GetBalance(c.Request.Context(), c.Param("participant_id"))
	if err != nil {
		appErr := mapParticipantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(b))
}

func mapParticipantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidParticipant), errors.Is(err, usecase.ErrInvalidParticipantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrParticipantNotFound):
		return pkg.NewDomainErrorSimple("PARTICIPANT_NOT_FOUND", "Participant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
