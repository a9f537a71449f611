package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spothotel-backend/controllers"
	"spothotel-backend/middleware"
	"spothotel-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// public
	api.POST("/signup", ac.Signup)
	api.POST("/login", ac.Login)
	api.GET("/logout", ac.Logout)
	api.GET("/hotels", hc.SearchHotels)
	api.GET("/hotel/:id", hc.GetHotel)
	api.GET("/hotel/:id/rooms", rc.GetHotelRooms)
	api.GET("/room/:id", rc.GetRoom)

	// authenticated users
	auth := api.Group("")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/me", ac.Me)
		auth.PUT("/me/update", ac.UpdateProfile)
		auth.PUT("/password/update", ac.ChangePassword)
		auth.DELETE("/me/delete", ac.DeleteAccount)

		auth.GET("/me/bookings", bc.GetOwnBookings)
		auth.GET("/me/booking/:id", bc.GetOwnBooking)

		auth.GET("/stripeapikey", bc.GetStripeAPIKey)
		auth.POST("/stripeclientkey", bc.CreatePaymentIntent)
	}

	// admin
	admin := api.Group("")
	admin.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.POST("/hotel/new", hc.CreateHotel)
		admin.PUT("/hotel/:id", hc.UpdateHotel)
		admin.DELETE("/hotel/:id", hc.DeleteHotel)
		admin.PUT("/hotel/:id/images", hc.UploadHotelPictures)

		admin.POST("/hotel/:id/room/new", rc.CreateRoom)
		admin.PUT("/room/:id", rc.UpdateRoom)
		admin.DELETE("/room/:id", rc.DeleteRoom)
		admin.PUT("/room/:id/images", rc.UploadRoomPictures)

		admin.GET("/bookings", bc.GetAllBookings)
		admin.GET("/booking/:id", bc.GetBooking)
		admin.PUT("/booking/:id", bc.UpdateBooking)

		admin.GET("/users", uc.GetUsers)
		admin.GET("/user/:id", uc.GetUser)
		admin.PUT("/user/:id/role", uc.ChangeRole)
	}

	// registered after the static /hotel/:id/... routes so the :room
	// segment doesn't shadow them
	auth.POST("/hotel/:id/:room/book", bc.CreateBooking)

	return r
}
