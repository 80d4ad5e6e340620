package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paperlens/internal/ai"
	appsvc "paperlens/internal/app"
	"paperlens/internal/bootstrap"
	"paperlens/internal/cache"
	"paperlens/internal/platform/rabbitmq"
	"paperlens/internal/repository"
	"paperlens/internal/transport/http/handler"
	"paperlens/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog(app.Logger), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", "web/index.html")
	router.GET("/healthz", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	paperRepo := repository.NewPaperRepository(app.MySQL)
	auditRepo := repository.NewAnalysisRecordRepository(app.MySQL)
	biasCache := cache.NewBiasCache(app.Redis, time.Duration(app.Config.Redis.BiasCacheTTLSeconds)*time.Second)
	publisher := rabbitmq.NewAnalysisPublisher(app.MQConn, app.Config.RabbitMQ.AnalysisAuditQueue)
	generator := ai.NewGenerator(ai.NewClient(), ai.ChatConfig{
		BaseURL: app.Config.LLM.BaseURL,
		APIKey:  app.Config.LLM.APIKey,
		Model:   app.Config.LLM.Model,
	}, app.Config.Analysis.MaxPromptRunes)

	paperService := appsvc.NewPaperService(paperRepo, generator, publisher, auditRepo, biasCache, app.Logger)
	analysisService := appsvc.NewAnalysisService(paperRepo, generator, biasCache, publisher, auditRepo, app.Logger)
	paperHandler := handler.NewPaperHandler(paperService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	v1 := router.Group("/api/v1")
	papers := v1.Group("/papers")
	papers.GET("", paperHandler.List)
	papers.POST("", paperHandler.Upload)
	papers.GET("/:id", paperHandler.Get)
	papers.DELETE("/:id", paperHandler.Delete)
	papers.POST("/:id/bias", analysisHandler.DetectBias)
	papers.POST("/:id/ask", analysisHandler.Ask)
	papers.GET("/:id/analyses", analysisHandler.ListAnalyses)

	return router
}
