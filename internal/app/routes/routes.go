package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/coachhub/internal/app/controllers"
	"github.com/edustack/coachhub/internal/app/models"
	"github.com/edustack/coachhub/internal/middleware"
	"github.com/edustack/coachhub/internal/pkg/auth"
)

// SetupRoutes mounts every API route on the engine. Public reads stay open;
// everything that writes or belongs to an account sits behind the auth
// middleware, with owner-only routes additionally role-gated.
func SetupRoutes(router *gin.Engine, ctrls *controllers.Controllers, jwtService *auth.JWTService, storagePath string) {
	authed := middleware.AuthMiddleware(jwtService)
	ownerOnly := middleware.RequireRole(models.RoleOwner)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored images are served straight off disk
	router.Static("/uploads", storagePath)

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrls.AuthController.Register)
		authGroup.POST("/login", ctrls.AuthController.Login)
		authGroup.POST("/refresh", ctrls.AuthController.RefreshToken)
		authGroup.POST("/logout", authed, ctrls.AuthController.Logout)
		authGroup.GET("/me", authed, ctrls.AuthController.Me)
		authGroup.POST("/me/image", authed, ctrls.AuthController.UploadProfileImage)
	}

	coaching := v1.Group("/coaching")
	{
		coaching.GET("", ctrls.CoachingController.List)
		coaching.GET("/mine", authed, ownerOnly, ctrls.CoachingController.MyCenters)
		coaching.GET("/:slug", ctrls.CoachingController.GetBySlug)
		coaching.POST("", authed, ownerOnly, ctrls.CoachingController.Register)
		// PUT lives in its own method tree, so :id does not clash with GET's :slug
		coaching.PUT("/:id", authed, ownerOnly, ctrls.CoachingController.Update)
		coaching.GET("/id/:id/requests", authed, ownerOnly, ctrls.RequestController.ListForCoaching)
		coaching.POST("/images", authed, ownerOnly, ctrls.CoachingController.UploadImage)
	}

	books := v1.Group("/books")
	{
		books.GET("", ctrls.BookController.List)
		books.GET("/mine", authed, ctrls.BookController.MyListings)
		books.GET("/:id", ctrls.BookController.Get)
		books.POST("", authed, ctrls.BookController.Create)
		books.POST("/:id/sold", authed, ctrls.BookController.MarkSold)
		books.POST("/images", authed, ctrls.BookController.UploadImage)
	}

	requests := v1.Group("/requests", authed)
	{
		requests.POST("", ctrls.RequestController.Create)
		requests.GET("/mine", ctrls.RequestController.MyRequests)
		requests.PUT("/:id/status", ownerOnly, ctrls.RequestController.Decide)
	}

	payments := v1.Group("/payments", authed)
	{
		payments.POST("", ctrls.PaymentController.CreateIntent)
		payments.GET("", ctrls.PaymentController.List)
		payments.GET("/:id", ctrls.PaymentController.Get)
		payments.GET("/:id/qr", ctrls.PaymentController.QRCode)
		payments.POST("/:id/verify", ctrls.PaymentController.Verify)
		payments.GET("/:id/receipt", ctrls.PaymentController.Receipt)
	}

	v1.POST("/chat", authed, ctrls.ChatController.Ask)
}
