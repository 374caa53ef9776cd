package app

import (
	"eduflow_backend/docs"
	"eduflow_backend/internal/config"
	"eduflow_backend/internal/middleware"
	"eduflow_backend/internal/model"
	"eduflow_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// course catalog is open to visitors
		public.GET("/courses", c.course.Catalog)
		public.GET("/courses/:id", c.course.Detail)

		// anyone may check a certificate; both valid and invalid answers are 200
		public.GET("/certificates/verify/:certificateNumber", c.certificate.Verify)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.user.UpdateProfile)
	rg.POST("/user/avatar/upload", c.user.UploadAvatar)

	// enrollments
	rg.POST("/enrollments", c.enrollment.Enroll)
	rg.GET("/enrollments", c.enrollment.ListMine)
	rg.PATCH("/enrollments/:courseId/progress", c.enrollment.UpdateProgress)

	// certificates
	rg.POST("/certificates", c.certificate.Issue)
	rg.GET("/certificates", c.certificate.ListMine)

	// dashboard
	rg.GET("/dashboard", c.dashboard.GetStudentDashboard)

	// AI chat widget
	rg.POST("/chat/ask", c.chat.Ask)
	rg.POST("/chat/ask/stream", c.chat.AskStream)
	rg.GET("/chat/history", c.chat.History)
	rg.GET("/chat/history/:sessionId", c.chat.SessionDetail)
	rg.DELETE("/chat/history/:sessionId", c.chat.DeleteSession)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/dashboard", c.dashboard.GetAdminDashboard)

		admin.GET("/users", c.user.ListUsers)
		admin.PATCH("/users/:id/disabled", c.user.SetDisabled)

		admin.GET("/courses", c.course.ListAll)
		admin.POST("/courses", c.course.Create)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)
	}

	// instructors may manage courses too
	instructor := router.Group("/api/instructor")
	instructor.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/courses", c.course.ListAll)
		instructor.POST("/courses", c.course.Create)
		instructor.PUT("/courses/:id", c.course.Update)
	}

	// admin certificate search lives under the certificates prefix
	certAdmin := router.Group("/api/certificates/admin")
	certAdmin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		certAdmin.GET("/all", c.certificate.ListAll)
	}
}
