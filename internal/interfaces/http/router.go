// Package http wires the HTTP surface: router, middleware and handlers.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogApp "entregas/internal/application/catalog"
	"entregas/internal/application/delivery/usecases"
	workerApp "entregas/internal/application/worker"
	"entregas/internal/infrastructure/config"
	"entregas/internal/infrastructure/repository"
	"entregas/internal/interfaces/http/handlers"
	"entregas/internal/interfaces/http/middleware"
	"entregas/internal/shared/db"
	"entregas/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	server *http.Server
	logger logger.Interface

	healthHandler   *handlers.HealthHandler
	benefitHandler  *handlers.BenefitHandler
	periodHandler   *handlers.PeriodHandler
	deliveryHandler *handlers.DeliveryHandler
	reportHandler   *handlers.ReportHandler
}

// NewRouter builds the full dependency graph from the injected store handle.
func NewRouter(database *gorm.DB, log logger.Interface) *Router {
	benefitRepo := repository.NewBenefitRepository(database, log)
	periodRepo := repository.NewPeriodRepository(database, log)
	workerRepo := repository.NewWorkerRepository(database, log)
	deliveryRepo := repository.NewDeliveryRepository(database, log)
	auditRepo := repository.NewAuditRepository(database, log)

	txManager := db.NewTransactionManager(database)

	benefitService := catalogApp.NewBenefitService(benefitRepo, log)
	periodService := catalogApp.NewPeriodService(periodRepo, log)
	registry := workerApp.NewRegistry(workerRepo, log)

	createUC := usecases.NewCreateDeliveryUseCase(deliveryRepo, benefitRepo, periodRepo, registry, auditRepo, txManager, log)
	getUC := usecases.NewGetDeliveryUseCase(deliveryRepo, workerRepo, log)
	listUC := usecases.NewListDeliveriesUseCase(deliveryRepo, workerRepo, log)
	updateUC := usecases.NewUpdateDeliveryUseCase(deliveryRepo, auditRepo, txManager, log)
	reportUC := usecases.NewReportByBenefitUseCase(deliveryRepo, log)

	return &Router{
		engine:          gin.New(),
		logger:          log,
		healthHandler:   handlers.NewHealthHandler(database, log),
		benefitHandler:  handlers.NewBenefitHandler(benefitService, log),
		periodHandler:   handlers.NewPeriodHandler(periodService, log),
		deliveryHandler: handlers.NewDeliveryHandler(createUC, getUC, listUC, updateUC, log),
		reportHandler:   handlers.NewReportHandler(reportUC, log),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/", r.healthHandler.Index)
	r.engine.GET("/health", r.healthHandler.Health)

	beneficios := r.engine.Group("/beneficios")
	{
		beneficios.GET("", r.benefitHandler.List)
		beneficios.POST("", r.benefitHandler.Create)
		beneficios.GET("/:codigo", r.benefitHandler.Get)
		beneficios.PUT("/:codigo", r.benefitHandler.Update)
		beneficios.DELETE("/:codigo", r.benefitHandler.Delete)
	}

	periodos := r.engine.Group("/periodos")
	{
		periodos.GET("", r.periodHandler.List)
		periodos.POST("", r.periodHandler.Create)
		periodos.GET("/:codigo", r.periodHandler.Get)
		periodos.PUT("/:codigo", r.periodHandler.Update)
		periodos.DELETE("/:codigo", r.periodHandler.Delete)
	}

	entregas := r.engine.Group("/entregas")
	{
		entregas.GET("", r.deliveryHandler.List)
		entregas.POST("", r.deliveryHandler.Create)
		entregas.GET("/:id", r.deliveryHandler.Get)
		entregas.PATCH("/:id", r.deliveryHandler.Update)
	}

	reportes := r.engine.Group("/reportes")
	{
		reportes.GET("/entregas-por-beneficio", r.reportHandler.DeliveriesByBenefit)
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start begins serving on addr. It blocks until the server stops.
func (r *Router) Start(addr string) error {
	r.server = &http.Server{
		Addr:         addr,
		Handler:      r.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return r.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
