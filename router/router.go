package router

import (
	"time"

	"butce/api"
	"butce/config"
	_ "butce/docs"
	"butce/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the gin engine with all routes.
func SetupRouter(cfg *config.Config, log *logrus.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	// swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// batch job triggers, guarded by a shared secret instead of a user token
	jobsHandler := api.NewJobsHandler(log)
	r.POST("/jobs/milestones", jobsHandler.RunMilestones)

	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/push-token", authHandler.UpdatePushToken)

			settingsHandler := api.NewSettingsHandler()
			authorized.GET("/settings", settingsHandler.Get)
			authorized.PUT("/settings", settingsHandler.Update)

			incomeHandler := api.NewIncomeHandler()
			incomes := authorized.Group("/incomes")
			{
				incomes.POST("", incomeHandler.Create)
				incomes.GET("", incomeHandler.List)
				incomes.GET("/:id", incomeHandler.Get)
				incomes.DELETE("/:id", incomeHandler.Delete)
			}

			debtHandler := api.NewDebtHandler()
			debts := authorized.Group("/debts")
			{
				debts.POST("", debtHandler.Create)
				debts.GET("", debtHandler.List)
				debts.GET("/:id", debtHandler.Get)
				debts.PUT("/:id", debtHandler.Update)
				debts.DELETE("/:id", debtHandler.Delete)
				debts.POST("/:id/payments", debtHandler.CreatePayment)
				debts.DELETE("/:id/payments/:paymentId", debtHandler.DeletePayment)
			}

			goalHandler := api.NewGoalHandler()
			goals := authorized.Group("/goals")
			{
				goals.POST("", goalHandler.Create)
				goals.GET("", goalHandler.List)
				goals.GET("/:id", goalHandler.Get)
				goals.PUT("/:id", goalHandler.Update)
				goals.DELETE("/:id", goalHandler.Delete)
				goals.POST("/:id/contributions", goalHandler.CreateContribution)
				goals.DELETE("/:id/contributions/:contributionId", goalHandler.DeleteContribution)
			}

			transferHandler := api.NewTransferHandler()
			transfers := authorized.Group("/transfers")
			{
				transfers.POST("", transferHandler.Create)
				transfers.GET("", transferHandler.List)
				transfers.DELETE("/:id", transferHandler.Delete)
			}

			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/summary", summaryHandler.Get)

			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/xlsx", exportHandler.ExportXLSX)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware handles cross-origin requests from the mobile app.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Job-Secret")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// preflights get an empty 200 so schedulers behind browsers work too
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}
