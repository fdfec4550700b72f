package routes

import (
	"log"
	_ "oficina_os/docs" // This will be auto-generated
	"oficina_os/internal/adapter/http/handlers"
	"oficina_os/internal/adapter/http/middleware"
	repository2 "oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/payments"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-contrib/gzip"
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

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)
	receivableRepo := repository2.NewReceivableDynamoRepository(ddb)

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo)
	taskUseCase := usecase.NewTaskUseCase(taskRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	receivableUseCase := usecase.NewReceivableUseCase(receivableRepo, orderRepo, paymentGateway)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)
	receivableHandler := handlers.NewReceivableHandler(receivableUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, orderHandler, taskHandler, receivableHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
}
