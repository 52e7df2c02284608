package routes

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "warranty_hub/docs" // This will be auto-generated
	"warranty_hub/internal/adapter/http/handlers"
	"warranty_hub/internal/adapter/http/middleware"
	repository2 "warranty_hub/internal/adapter/persistence/repository"
	"warranty_hub/internal/infrastructure/backend"
	"warranty_hub/internal/infrastructure/database"
	"warranty_hub/internal/infrastructure/events"
	"warranty_hub/internal/session"
	"warranty_hub/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

const defaultRepairWarehouseID = "WH-REPAIR-01"

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
	store := session.NewStore()

	var notifier interfaces.IEventNotifier
	mqttNotifier, err := events.NewMQTTNotifierFromEnv()
	if err != nil {
		log.Printf("MQTT notifier not configured: %v", err)
	} else {
		notifier = mqttNotifier
	}

	client, err := backend.NewClientFromEnv(store, notifier)
	if err != nil {
		log.Fatalf("Warranty backend not configured: %v", err)
	}
	newBackend := func(sess *session.Session) interfaces.IWarrantyBackend {
		return client.ForSession(sess)
	}

	ddb := database.ConnectDynamoDB()
	auditRepo := repository2.NewWorkflowAuditDynamoRepository(ddb)

	warehouseID := os.Getenv("REPAIR_WAREHOUSE_ID")
	if warehouseID == "" {
		warehouseID = defaultRepairWarehouseID
	}

	claimHandler := handlers.NewClaimHandler(newBackend, warehouseID)
	workflowHandler := handlers.NewWorkflowHandler(newBackend, auditRepo, notifier)
	schedulerHandler := handlers.NewSchedulerHandler(newBackend, notifier)

	auth := middleware.NewSessionAuth(store)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("", auth.Handler())
	addWarrantyRoutes(secured, claimHandler, workflowHandler, schedulerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
