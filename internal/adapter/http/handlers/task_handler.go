package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_prime/internal/adapter/http/dto/request"
	response "oficina_prime/internal/adapter/http/dto/response"
	"oficina_prime/internal/domain/allocation"
	"oficina_prime/internal/usecase"
	"oficina_prime/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTaskPayload = pkg.NewDomainErrorSimple("INVALID_TASK_INPUT", "Invalid task payload", http.StatusBadRequest)
)

// TaskHandler handles HTTP requests for labor tasks and their commission
// splits.

type TaskHandler struct {
	usecase usecase.ITaskLifecycleUseCase
}

func NewTaskHandler(uc usecase.ITaskLifecycleUseCase) *TaskHandler {
	return &TaskHandler{usecase: uc}
}

// CreateTask registers a task on a vehicle. The assignment list order is the
// cascade order of the split and is preserved as given.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	var payload request.TaskCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateTaskCommand{
		VehicleID:   vehicleID,
		Title:       payload.Title,
		Payment:     payload.Payment,
		Assignments: request.ToAssignments(payload.Assignments),
	}
	task, err := h.usecase.CreateTask(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTask(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.usecase.GetTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) ListTasksByVehicle(c *gin.Context) {
	tasks, err := h.usecase.ListTasksByVehicle(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTasks(tasks))
}

func (h *TaskHandler) StartTask(c *gin.Context) {
	task, err := h.usecase.StartTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	task, err := h.usecase.CompleteTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

// ApproveTask is the money-moving transition: it runs the split, credits the
// ledger and reports whether the approval completed the whole vehicle.
func (h *TaskHandler) ApproveTask(c *gin.Context) {
	taskID := c.Param("task_id")
	log.Printf("[task][handler] approve start task_id=%s", taskID)

	result, err := h.usecase.ApproveTask(c.Request.Context(), taskID)
	if err != nil {
		log.Printf("[task][handler] approve failed task_id=%s err=%v", taskID, err)
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[task][handler] approve success task_id=%s vehicle_completed=%t", taskID, result.VehicleCompleted)

	c.JSON(http.StatusOK, response.ApprovalResponse{
		TaskResponse:     response.FromTask(result.Task),
		VehicleCompleted: result.VehicleCompleted,
	})
}

func (h *TaskHandler) RejectTask(c *gin.Context) {
	var payload request.TaskRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	task, err := h.usecase.RejectTask(c.Request.Context(), c.Param("task_id"), payload.Reason)
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) ResubmitTask(c *gin.Context) {
	task, err := h.usecase.ResubmitTask(c.Request.Context(), c.Param("task_id"))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTask(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.usecase.DeleteTask(c.Request.Context(), c.Param("task_id")); err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewAllocation runs the commission split as a dry run, for quoting.
func (h *TaskHandler) PreviewAllocation(c *gin.Context) {
	var payload request.AllocationPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTaskPayload.HTTPStatus, errInvalidTaskPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.PreviewAllocation(c.Request.Context(), payload.Payment, request.ToAssignments(payload.Assignments))
	if err != nil {
		appErr := mapTaskError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAllocationResult(payload.Payment, res))
}

func mapTaskError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTaskID),
		errors.Is(err, usecase.ErrInvalidTaskTitle),
		errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrEmptyReason),
		errors.Is(err, usecase.ErrDuplicateParticipant):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, allocation.ErrNoAssignments),
		errors.Is(err, allocation.ErrNegativePayment),
		errors.Is(err, allocation.ErrInvalidPercentage):
		return pkg.NewDomainErrorSimple("INVALID_ALLOCATION", "Invalid commission split input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return pkg.NewDomainErrorSimple("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParticipantNotFound):
		return pkg.NewDomainErrorSimple("PARTICIPANT_NOT_FOUND", "Participant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Task cannot transition from its current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
