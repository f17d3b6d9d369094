// File: routes/routes.go
package routes

import (
	"time"

	"appointly/handlers"
	"appointly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBlockedDateRoutes registers the blocked-date registry endpoints.
// Reads are public so the booking calendar can render without a session;
// writes require a user and the destructive bulk paths require an admin.
func RegisterBlockedDateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blocked-dates")
	{
		api.GET("", hb.BlockedDates.GetAllHandler)
		api.GET("/month/:year/:month", hb.BlockedDates.GetByMonthHandler)
		api.GET("/check/:date", hb.BlockedDates.CheckDateHandler)
		api.GET("/range", hb.BlockedDates.GetInRangeHandler)
		api.GET("/summary", hb.BlockedDates.SummaryHandler)
		api.GET("/validate", hb.BlockedDates.ValidateHandler)

		protected := api.Group("")
		protected.Use(middleware.UserAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.BlockedDates.CreateHandler)
		protected.POST("/bulk-block", hb.BlockedDates.BulkBlockHandler)
		protected.PUT("/:id", hb.BlockedDates.UpdateHandler)
		protected.DELETE("/date/:date", hb.BlockedDates.DeleteByDateHandler)

		admin := api.Group("")
		admin.Use(middleware.UserAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
		admin.POST("/force-sync", hb.BlockedDates.ForceSyncHandler)
		admin.DELETE("/clear-all", hb.BlockedDates.ClearAllHandler)

		// Registered after /date/:date and /clear-all so those match first.
		protected.DELETE("/:id", hb.BlockedDates.DeleteHandler)
	}
}

// RegisterAppointmentRoutes registers appointment endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.UserAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.Appointments.GetAllHandler)
		api.GET("/with-user-details", hb.Appointments.GetWithUserDetailsHandler)
		api.GET("/user/:userId", hb.Appointments.GetByUserHandler)
		api.GET("/:id", hb.Appointments.GetByIDHandler)
		api.POST("", hb.Appointments.CreateHandler)
		api.PUT("/:id", hb.Appointments.UpdateHandler)
		api.POST("/:id/cancel", hb.Appointments.CancelHandler)
		api.DELETE("/:id", hb.Appointments.DeleteHandler)
	}
}

// RegisterUserRoutes registers user and auth endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", hb.Users.RegisterHandler)
		auth.POST("/login", hb.Users.LoginHandler)
		auth.POST("/forgot-password", hb.Users.ForgotPasswordHandler)
		auth.POST("/reset-password", hb.Users.ResetPasswordHandler)
	}

	api := r.Group("/api/users")
	{
		api.POST("", hb.Users.RegisterHandler)
		api.POST("/login", hb.Users.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.UserAuthMiddleware(hb.UserRepo))
		protected.GET("/:id", hb.Users.GetByIDHandler)
		protected.PUT("/:id", hb.Users.UpdateHandler)
		protected.DELETE("/:id", hb.Users.DeleteHandler)
	}
}

// RegisterAdminRoutes registers admin-only endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.UserAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
	{
		admin.GET("/users", hb.Users.GetAllHandler)
	}

	mail := r.Group("/api/email")
	mail.Use(middleware.UserAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
	{
		mail.POST("/test", hb.Email.TestHandler)
		mail.POST("/welcome", hb.Email.WelcomeHandler)
		mail.POST("/custom", hb.Email.CustomHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBlockedDateRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
