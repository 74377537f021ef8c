package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/psds-microservice/office-manager/api"
	"github.com/psds-microservice/office-manager/internal/handler"
	"github.com/psds-microservice/office-manager/internal/metrics"
	"github.com/psds-microservice/office-manager/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathHealth  = "/health"
	PathReady   = "/ready"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger"
)

// Deps — обработчики и инфраструктура, из которых собирается роутер.
type Deps struct {
	AI      *handler.AIHandler
	Auth    *handler.AuthHandler
	Tickets *handler.TicketHandler
	Tasks   *handler.TaskHandler
	Leads   *handler.LeadHandler
	Reports *handler.ReportHandler
	Tools   *handler.ToolsHandler

	Ping     handler.Pinger
	Metrics  http.Handler
	Recorder metrics.Recorder
	Log      *slog.Logger
}

func New(d Deps) http.Handler {
	handler.RegisterValidators()
	if d.Recorder == nil {
		d.Recorder = metrics.Nop{}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(d.Log, d.Recorder))

	r.GET(PathHealth, handler.Health)
	if d.Ping != nil {
		r.GET(PathReady, handler.Ready(d.Ping))
	}
	if d.Metrics != nil {
		r.GET(PathMetrics, gin.WrapH(d.Metrics))
	}
	r.GET(PathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, PathSwagger+"/") })
	r.GET(PathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = PathSwagger + "/index.html"
			c.Request.RequestURI = PathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(PathSwagger+"/openapi.json"))(c)
	})

	r.POST("/auth/login", d.Auth.Login)
	r.POST("/ai/process", d.AI.Process)

	support := r.Group("/support")
	{
		support.POST("/tickets", d.Tickets.Create)
		support.GET("/tickets", d.Tickets.List)
		support.POST("/classify", d.Tools.ClassifyComplaint)
	}
	admin := r.Group("/admin")
	{
		admin.POST("/tasks", d.Tasks.Create)
		admin.GET("/tasks", d.Tasks.List)
	}
	sales := r.Group("/sales")
	{
		sales.POST("/leads", d.Leads.Create)
		sales.GET("/leads", d.Leads.List)
		sales.POST("/leads/score", d.Leads.Score)
	}
	r.POST("/hr/resume/score", d.Tools.ScoreResume)
	r.GET("/dashboard/metrics", d.Reports.Metrics)
	r.GET("/reports/monthly", d.Reports.Monthly)

	return r
}
