package routes

import (
	"context"
	"log"
	_ "mecanica_projects/docs" // swag generated
	"mecanica_projects/internal/adapter/http/handlers"
	"mecanica_projects/internal/adapter/http/middleware"
	repository2 "mecanica_projects/internal/adapter/persistence/repository"
	"mecanica_projects/internal/infrastructure/clients"
	"mecanica_projects/internal/infrastructure/config"
	"mecanica_projects/internal/infrastructure/database"
	"mecanica_projects/internal/infrastructure/metrics"
	"mecanica_projects/internal/infrastructure/payments"
	"mecanica_projects/internal/usecase"
	"mecanica_projects/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(router, cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	ddb := database.ConnectDynamoDB(context.Background(), cfg)

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	noteRepo := repository2.NewServiceNoteDynamoRepository(ddb)
	photoRepo := repository2.NewServicePhotoDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)

	dispatcher := usecase.NewSideEffectDispatcher(
		clients.NewAppointmentClient(cfg.AppointmentServiceURL, cfg.SideEffectTimeout),
		clients.NewNotificationClient(cfg.NotificationServiceURL, cfg.SideEffectTimeout),
		metrics.NewDispatchRecorder(),
		usecase.DispatcherConfig{
			Timeout:  cfg.SideEffectTimeout,
			Attempts: cfg.SideEffectAttempts,
			Delay:    cfg.SideEffectDelay,
			Clock:    clock.WallClock,
		},
	)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentMockEnabled())
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	projectUseCase := usecase.NewProjectUseCase(projectRepo, projectRepo, dispatcher)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, noteRepo, photoRepo, invoiceRepo)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(invoiceRepo, paymentGateway, usecase.PaymentSettings{
		Mock:            cfg.PaymentMockEnabled(),
		SandboxToken:    cfg.SandboxToken(),
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(paymentUseCase, cfg.PaymentMockEnabled())

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas pelo gateway
	authenticated := v1.Group("", middleware.Identity())
	addProjectRoutes(authenticated, projectHandler)
	addServiceRoutes(authenticated, serviceHandler)
	addInvoiceRoutes(authenticated, invoiceHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
