package routes

import (
	"oficina_prime/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathVehicles     = "/vehicles"
	PathTasks        = "/tasks"
	PathLines        = "/lines"
	PathParticipants = "/participants"
	PathAllocations  = "/allocations"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	vehicleHandler *handlers.VehicleHandler,
	taskHandler *handlers.TaskHandler,
	debtHandler *handlers.DebtHandler,
	participantHandler *handlers.ParticipantHandler,
) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CheckInVehicle)
		vehicles.GET("/:vehicle_id", vehicleHandler.GetVehicleRecord)
		vehicles.POST("/:vehicle_id/lines", vehicleHandler.AddServiceLine)
		vehicles.POST("/:vehicle_id/payments", vehicleHandler.RecordClientPayment)
		vehicles.PATCH("/:vehicle_id/deliver", vehicleHandler.DeliverVehicle)

		vehicles.POST("/:vehicle_id/tasks", taskHandler.CreateTask)
		vehicles.GET("/:vehicle_id/tasks", taskHandler.ListTasksByVehicle)

		vehicles.GET("/:vehicle_id/receivable", debtHandler.GetReceivable)
		vehicles.POST("/:vehicle_id/receivable/payments", debtHandler.CollectPayment)
	}

	tasks := rg.Group(PathTasks)
	{
		tasks.GET("/:task_id", taskHandler.GetTask)
		tasks.DELETE("/:task_id", taskHandler.DeleteTask)
		tasks.PATCH("/:task_id/start", taskHandler.StartTask)
		tasks.PATCH("/:task_id/complete", taskHandler.CompleteTask)
		tasks.PATCH("/:task_id/approve", taskHandler.ApproveTask)
		tasks.PATCH("/:task_id/reject", taskHandler.RejectTask)
		tasks.PATCH("/:task_id/resubmit", taskHandler.ResubmitTask)
	}

	lines := rg.Group(PathLines)
	{
		lines.PATCH("/:line_id/start", vehicleHandler.StartServiceLine)
		lines.PATCH("/:line_id/complete", vehicleHandler.CompleteServiceLine)
	}

	participants := rg.Group(PathParticipants)
	{
		participants.POST("", participantHandler.CreateParticipant)
		participants.GET("/:participant_id", participantHandler.GetParticipant)
		participants.GET("/:participant_id/balance", participantHandler.GetBalance)
	}

	allocations := rg.Group(PathAllocations)
	{
		allocations.POST("/preview", taskHandler.PreviewAllocation)
	}
}
