package routes

import (
	"log"
	_ "oficina_prime/docs" // This will be auto-generated
	"oficina_prime/internal/adapter/http/handlers"
	repository2 "oficina_prime/internal/adapter/persistence/repository"
	"oficina_prime/internal/infrastructure/database"
	"oficina_prime/internal/infrastructure/jobs"
	"oficina_prime/internal/infrastructure/notify"
	"oficina_prime/internal/infrastructure/payments"
	"oficina_prime/internal/usecase"
	"oficina_prime/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)
	lineRepo := repository2.NewServiceLineDynamoRepository(ddb)
	participantRepo := repository2.NewParticipantDynamoRepository(ddb)
	earningRepo := repository2.NewEarningDynamoRepository(ddb)
	receivableRepo := repository2.NewReceivableDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var notifier interfaces.INotifier
	chatID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	tgNotifier, err := notify.NewTelegramNotifier(os.Getenv("TELEGRAM_BOT_TOKEN"), chatID)
	if err != nil {
		log.Printf("Telegram notifier not configured: %v", err)
	} else {
		notifier = tgNotifier
	}

	debtUseCase := usecase.NewDebtUseCase(receivableRepo, vehicleRepo, paymentGateway)
	completionUseCase := usecase.NewCompletionUseCase(vehicleRepo, taskRepo, lineRepo, debtUseCase, notifier)
	taskUseCase := usecase.NewTaskLifecycleUseCase(taskRepo, participantRepo, vehicleRepo, earningRepo, completionUseCase, notifier)
	ledgerUseCase := usecase.NewLedgerUseCase(vehicleRepo, lineRepo, taskRepo, debtUseCase, completionUseCase)
	participantUseCase := usecase.NewParticipantUseCase(participantRepo, earningRepo)

	sweep := jobs.NewCompletionSweep(vehicleRepo, completionUseCase, os.Getenv("COMPLETION_SWEEP_SCHEDULE"))
	if err := sweep.Start(); err != nil {
		log.Printf("Completion sweep not started: %v", err)
	}

	vehicleHandler := handlers.NewVehicleHandler(ledgerUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)
	debtHandler := handlers.NewDebtHandler(debtUseCase)
	participantHandler := handlers.NewParticipantHandler(participantUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, vehicleHandler, taskHandler, debtHandler, participantHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
