package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trek-backend-go/internal/config"
	"github.com/jengzang/trek-backend-go/internal/handler"
	"github.com/jengzang/trek-backend-go/internal/middleware"
)

// Handlers groups the handlers mounted by the router
type Handlers struct {
	Recommend  *handler.RecommendHandler
	Meta       *handler.MetaHandler
	Enrichment *handler.EnrichmentHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Trek Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(60, time.Minute))
	{
		// 推荐接口
		api.POST("/recommend", h.Recommend.Recommend)

		// 天气查询接口
		api.GET("/weather", h.Recommend.Weather)

		// 数据集元信息接口
		api.GET("/meta", h.Meta.Meta)

		// 步道查询接口
		trails := api.Group("/trails")
		{
			trails.GET("/nearby", h.Meta.Nearby)
			trails.GET("/:name", h.Meta.GetTrail)
		}

		// 管理接口（需要认证）
		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(cfg.JWTSecret))
		{
			tasks := admin.Group("/enrichment/tasks")
			{
				tasks.POST("", h.Enrichment.CreateTask)
				tasks.GET("", h.Enrichment.ListTasks)
				tasks.GET("/:id", h.Enrichment.GetTask)
				tasks.POST("/:id/cancel", h.Enrichment.CancelTask)
			}
		}
	}

	return r
}
