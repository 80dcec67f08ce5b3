package routes

import (
	"net/http"
	"strings"
	"time"

	"hauling_pros/internal/adapter/http/handlers"
	"hauling_pros/internal/adapter/persistence/repository"
	"hauling_pros/internal/config"
	"hauling_pros/internal/infrastructure/assistant"
	"hauling_pros/internal/infrastructure/database"
	"hauling_pros/internal/infrastructure/logger"
	"hauling_pros/internal/infrastructure/notifications"
	"hauling_pros/internal/infrastructure/payments"
	"hauling_pros/internal/infrastructure/realtime"
	"hauling_pros/internal/usecase"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogPretty)

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("[server] failed to start the application")
	}
}

type stores struct {
	estimates interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
}

func openStores(cfg *config.Config) stores {
	switch cfg.StoreDriver {
	case config.StorePostgres, config.StoreMySQL:
		db, err := database.ConnectSQL(cfg.StoreDriver, cfg.DatabaseDSN, repository.SQLModels()...)
		if err != nil {
			log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("[server] failed to open sql store")
		}
		return stores{
			estimates: repository.NewEstimateGormRepository(db),
			customers: repository.NewCustomerGormRepository(db),
		}
	case config.StoreDynamoDB:
	default:
		log.Warn().Str("driver", cfg.StoreDriver).Msg("[server] unknown STORE_DRIVER, using dynamodb")
	}

	ddb := database.ConnectDynamoDB(database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
	return stores{
		estimates: repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable),
		customers: repository.NewCustomerDynamoRepository(ddb, cfg.CustomersTable),
	}
}

func getRoutes(cfg *config.Config) {
	st := openStores(cfg)
	hub := realtime.NewHub()

	// Optional integrations stay nil when not configured; the usecases
	// degrade per operation instead of refusing to start.
	var notifier interfaces.INotificationSender
	if sender, err := notifications.NewSMTPSender(cfg.SMTP, cfg.AdminNotificationEmail); err != nil {
		log.Warn().Err(err).Msg("[server] email notifications disabled")
	} else {
		notifier = sender
	}

	var estimateAssistant interfaces.IEstimateAssistant
	if a, err := assistant.NewOpenAIAssistant(cfg.Assistant); err != nil {
		log.Warn().Err(err).Msg("[server] estimate assistant disabled")
	} else {
		estimateAssistant = a
	}

	gateway, err := payments.NewGateway(cfg.Payment)
	if err != nil {
		log.Warn().Err(err).Str("provider", cfg.Payment.Provider).Msg("[server] payment gateway disabled")
	}

	bookingUseCase := usecase.NewBookingUseCase(st.customers, st.estimates, estimateAssistant, notifier, hub)
	estimateUseCase := usecase.NewEstimateUseCase(st.estimates, st.customers, notifier, gateway, hub, cfg.BaseURL)
	appointmentUseCase := usecase.NewAppointmentUseCase(st.estimates, estimateUseCase, cfg.Location())
	paymentLinkUseCase := usecase.NewPaymentLinkUseCase(gateway)
	authUseCase := usecase.NewAuthUseCase(usecase.AdminCredentials{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)

	h := httpHandlers{
		booking:     handlers.NewBookingHandler(bookingUseCase),
		estimate:    handlers.NewEstimateHandler(estimateUseCase),
		appointment: handlers.NewAppointmentHandler(appointmentUseCase),
		paymentLink: handlers.NewPaymentLinkHandler(paymentLinkUseCase),
		auth:        handlers.NewAuthHandler(authUseCase, strings.HasPrefix(cfg.BaseURL, "https://")),
		ws:          handlers.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, h.booking, h.estimate)
	addAdminRoutes(v1, authUseCase, h)
}

func setMiddlewares(cfg *config.Config) {
	router.Use(logger.GinLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[server] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
