package routes

import (
	"net/http"

	"agronomy-services-api-server/config"
	"agronomy-services-api-server/internal/api/handlers"
	"agronomy-services-api-server/internal/api/middleware"
	"agronomy-services-api-server/internal/models"
	"agronomy-services-api-server/internal/notify"
	"agronomy-services-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires handlers, middleware and route groups.
func SetupRouter(st *store.Store, dispatcher notify.Dispatcher, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	// Public POST endpoints take unauthenticated traffic; throttle them.
	publicLimit := middleware.NewRateLimiter(5, 10)

	authHandler := &handlers.AuthHandler{Store: st}
	farmerHandler := &handlers.FarmerHandler{Store: st, Notify: dispatcher}
	agronomistHandler := &handlers.AgronomistHandler{Store: st, Notify: dispatcher}
	assessmentHandler := &handlers.AssessmentHandler{Store: st, Notify: dispatcher, AdminEmail: cfg.SMTP.AdminEmail}
	contactHandler := &handlers.ContactHandler{Store: st, Notify: dispatcher, AdminEmail: cfg.SMTP.AdminEmail, StaffPhone: cfg.Twilio.StaffPhone}
	adminHandler := &handlers.AdminHandler{Store: st}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Agronomy backend is live")
	})

	api := router.Group("/api")
	{
		// === PUBLIC ROUTES ===
		api.POST("/login", publicLimit.Handler(), authHandler.Login)
		api.POST("/farmer/register", publicLimit.Handler(), farmerHandler.Register)
		api.POST("/assessment/submit", publicLimit.Handler(), assessmentHandler.Submit)
		api.POST("/contact", publicLimit.Handler(), contactHandler.Submit)
		api.POST("/subscribe", publicLimit.Handler(), contactHandler.Subscribe)

		// === AUTHENTICATED ROUTES ===
		api.POST("/logout", middleware.Authenticate(), authHandler.Logout)

		farmer := api.Group("/farmer")
		farmer.Use(middleware.Authenticate())
		farmer.Use(middleware.Authorize(models.RoleFarmer))
		{
			farmer.GET("/profile", farmerHandler.GetProfile)
			farmer.PUT("/profile", farmerHandler.UpdateProfile)
			farmer.GET("/dashboard", farmerHandler.Dashboard)
			farmer.POST("/orders", farmerHandler.CreateOrder)
			farmer.POST("/sales", farmerHandler.CreateSale)
		}

		agronomist := api.Group("/agronomist")
		agronomist.Use(middleware.Authenticate())
		agronomist.Use(middleware.Authorize(models.RoleAgronomist))
		{
			agronomist.GET("/dashboard", agronomistHandler.Dashboard)
			agronomist.POST("/farmers", agronomistHandler.AddFarmer)
			agronomist.POST("/visits", agronomistHandler.ScheduleVisit)
			agronomist.POST("/reports", agronomistHandler.CreateReport)
		}

		staff := api.Group("/")
		staff.Use(middleware.Authenticate())
		staff.Use(middleware.Authorize(models.RoleAdmin, models.RoleAgronomist))
		{
			staff.GET("/assessment/requests", assessmentHandler.List)
			staff.PATCH("/assessment/requests/:id/status", assessmentHandler.UpdateStatus)
			staff.GET("/contact/messages", contactHandler.ListMessages)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.Authenticate())
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	return router
}
